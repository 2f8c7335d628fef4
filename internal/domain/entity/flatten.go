package entity

// Flatten converts a nested mapping into dotted-path keys. Every non-mapping
// value below n becomes one entry; mappings are recursed into at any depth.
// A non-empty prefix is prepended to each key.
func Flatten(n *Node, prefix string) map[string]*Node {
	result := make(map[string]*Node)
	if n == nil {
		return result
	}
	if !n.IsMapping() {
		if prefix != "" {
			result[prefix] = n
		}
		return result
	}
	flattenInto(n, prefix, result)
	return result
}

func flattenInto(n *Node, prefix string, result map[string]*Node) {
	for _, e := range n.entries {
		key := e.Key
		if prefix != "" {
			key = prefix + PathSeparator + e.Key
		}

		if e.Value.IsMapping() {
			flattenInto(e.Value, key, result)
			continue
		}
		result[key] = e.Value
	}
}
