package sanitizer

import "strings"

// CleanStringSlice trims every element, drops empty ones and removes duplicates
// while keeping the first occurrence order.
func CleanStringSlice(slice []string) []string {
	if slice == nil {
		return nil
	}
	result := make([]string, 0, len(slice))
	seen := make(map[string]struct{}, len(slice))
	for _, s := range slice {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		result = append(result, s)
	}
	return result
}

// SanitizeSlice applies fn to every element and then cleans the result.
func SanitizeSlice(slice []string, fn func(string) string) []string {
	if slice == nil {
		return nil
	}
	out := make([]string, len(slice))
	for i, s := range slice {
		out[i] = fn(s)
	}
	return CleanStringSlice(out)
}
