package models

// User is the authenticated account record as served by the backend.
// FavMeals and FavDrinks carry the IDs of favorited global recipes; the
// session layer reseeds its lookup sets from them on every resolution.
type User struct {
	Username  string  `json:"username"`
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Email     string  `json:"email"`
	FavMeals  []int64 `json:"favMeals"`
	FavDrinks []int64 `json:"favDrinks"`
}
