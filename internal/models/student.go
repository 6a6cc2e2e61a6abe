package models

// Student reprezentuje zarejestrowanego studenta
//
// Pole Password przechowuje hash bcrypt, nigdy jawne hasło.
// Hash jest zapisywany razem z rekordem, dlatego pole nie ma
// znacznika json:"-".
type Student struct {
	ID       string `json:"id" firestore:"id"`
	Name     string `json:"name" firestore:"name"`
	Username string `json:"username" firestore:"username"`
	Password string `json:"password" firestore:"password"`
	RollNo   string `json:"rollNo" firestore:"rollNo"`
}

// Identity zwraca tożsamość sesji dla studenta
func (s *Student) Identity() *User {
	return &User{
		ID:   s.ID,
		Name: s.Name,
		Role: RoleStudent,
	}
}
