package props

// MergeTrees composes nested value trees ordered strongest to weakest,
// returning a new tree that keeps values from stronger layers while filling
// missing branches from weaker ones. Objects merge per key; any other value
// from a stronger layer wins outright. Inputs are never mutated.
func MergeTrees(layers ...map[string]any) map[string]any {
	if len(layers) == 0 {
		return map[string]any{}
	}
	merged := cloneTree(layers[len(layers)-1])
	for i := len(layers) - 2; i >= 0; i-- {
		merged = overlayTree(layers[i], merged)
	}
	if merged == nil {
		return map[string]any{}
	}
	return merged
}

func overlayTree(strong, weak map[string]any) map[string]any {
	if strong == nil {
		return cloneTree(weak)
	}
	out := cloneTree(weak)
	if out == nil {
		out = map[string]any{}
	}
	for key, value := range strong {
		strongChild, strongIsMap := value.(map[string]any)
		weakChild, weakIsMap := out[key].(map[string]any)
		if strongIsMap && weakIsMap {
			out[key] = overlayTree(strongChild, weakChild)
			continue
		}
		out[key] = cloneValue(value)
	}
	return out
}

func cloneTree(tree map[string]any) map[string]any {
	if tree == nil {
		return nil
	}
	out := make(map[string]any, len(tree))
	for key, value := range tree {
		out[key] = cloneValue(value)
	}
	return out
}

func cloneValue(value any) any {
	switch v := value.(type) {
	case map[string]any:
		return cloneTree(v)
	case []any:
		out := make([]any, len(v))
		for i, elem := range v {
			out[i] = cloneValue(elem)
		}
		return out
	default:
		return v
	}
}
