package utils

import "strings"

func FindIndex[T comparable](slice []T, item T) int {
	for i, v := range slice {
		if v == item {
			return i
		}
	}
	return -1
}

func Contains[T comparable](slice []T, item T) bool {
	return FindIndex(slice, item) >= 0
}

// FindFold returns the index of the only item equal to s under Unicode case
// folding, or -1 when there is none or more than one.
func FindFold(slice []string, s string) int {
	found := -1
	for i, v := range slice {
		if strings.EqualFold(v, s) {
			if found >= 0 {
				return -1
			}
			found = i
		}
	}
	return found
}
