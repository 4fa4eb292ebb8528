package services

import "fmt"

// nextAvailableSlug returns base if free, otherwise the first base-N
// (N starting at 2) that taken reports as free. taken answers whether a
// candidate slug is already in use.
func nextAvailableSlug(base string, taken func(slug string) (bool, error)) (string, error) {
	slug := base
	for i := 2; ; i++ {
		inUse, err := taken(slug)
		if err != nil {
			return "", err
		}
		if !inUse {
			return slug, nil
		}
		slug = fmt.Sprintf("%s-%d", base, i)
	}
}
