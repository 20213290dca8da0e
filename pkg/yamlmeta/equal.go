// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package yamlmeta

// Equal reports whether a and b are structurally equal. Positions are
// ignored; map key order is significant.
func Equal(a, b interface{}) bool {
	kind := KindOf(a)
	if kind != KindOf(b) {
		return false
	}

	switch kind {
	case KindMap:
		aMap, bMap := a.(*Map), b.(*Map)
		if len(aMap.Items) != len(bMap.Items) {
			return false
		}
		for i, item := range aMap.Items {
			other := bMap.Items[i]
			if normalizeScalar(item.Key) != normalizeScalar(other.Key) || !Equal(item.Value, other.Value) {
				return false
			}
		}
		return true

	case KindArray:
		aArr, bArr := a.(*Array), b.(*Array)
		if len(aArr.Items) != len(bArr.Items) {
			return false
		}
		for i, item := range aArr.Items {
			if !Equal(item.Value, bArr.Items[i].Value) {
				return false
			}
		}
		return true

	default:
		return normalizeScalar(a) == normalizeScalar(b)
	}
}
