package routes

// Root is the info endpoint.
func Root() string { return "/" }

// Base returns the API base path.
func Base() string { return "/api" }

// Health returns the health endpoint path.
func Health() string { return Base() + "/health" }

// Assist returns the AI task endpoint path.
func Assist() string { return Base() + "/ai" }
