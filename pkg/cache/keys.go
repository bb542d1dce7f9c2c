package cache

// cache key for the neighborhood name list served to the form client.
func NeighborhoodListKey() string {
	return "neighborhoods:list"
}
