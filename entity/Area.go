package entity

import "strings"

// Area is a fixed city code classifying a restaurant's location.
type Area string

const (
	AreaMumbai    Area = "Mumbai"
	AreaBangalore Area = "Bangalore"
)

func (a Area) Valid() bool {
	return a == AreaMumbai || a == AreaBangalore
}

// Slug returns the lowercase form used in route paths, e.g. "mumbai".
func (a Area) Slug() string {
	return strings.ToLower(string(a))
}

// AreaFromSlug resolves a route slug back to an Area.
func AreaFromSlug(slug string) (Area, bool) {
	switch strings.ToLower(slug) {
	case AreaMumbai.Slug():
		return AreaMumbai, true
	case AreaBangalore.Slug():
		return AreaBangalore, true
	}
	return "", false
}
