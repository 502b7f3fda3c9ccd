package models

// Form payloads submitted to the backend. Validate tags are checked
// client-side before the request is issued; the backend repeats validation
// and its messages are rendered the same way.

// Credentials is the login form payload.
type Credentials struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// SignupData is the registration form payload. A successful signup also
// establishes a session, no separate login step.
type SignupData struct {
	Username  string `json:"username" validate:"required,min=1,max=30"`
	Password  string `json:"password" validate:"required,min=5,max=20"`
	FirstName string `json:"firstName" validate:"required,max=30"`
	LastName  string `json:"lastName" validate:"required,max=30"`
	Email     string `json:"email" validate:"required,email,max=60"`
}

// ProfileData is the profile-update payload. Username is fixed; the password
// is re-entered to confirm the change.
type ProfileData struct {
	FirstName string `json:"firstName" validate:"required,max=30"`
	LastName  string `json:"lastName" validate:"required,max=30"`
	Email     string `json:"email" validate:"required,email,max=60"`
	Password  string `json:"password" validate:"required"`
}

// RecipeData is the create/update payload for a personal recipe. Area applies
// to meals, DrinkType and Glass to drinks; the backend ignores fields that do
// not match the recipe type.
type RecipeData struct {
	Name         string   `json:"name" validate:"required,max=100"`
	Category     string   `json:"category" validate:"required,max=50"`
	Area         string   `json:"area,omitempty" validate:"max=50"`
	DrinkType    string   `json:"type,omitempty" validate:"max=50"`
	Glass        string   `json:"glass,omitempty" validate:"max=50"`
	Instructions string   `json:"instructions" validate:"required"`
	Thumbnail    string   `json:"thumbnail,omitempty" validate:"omitempty,url"`
	Ingredients  []string `json:"ingredients" validate:"required,min=1,dive,required"`
}
