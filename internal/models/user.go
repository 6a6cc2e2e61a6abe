package models

// UserRole określa rolę użytkownika w systemie
type UserRole string

const (
	RoleAdmin   UserRole = "admin"   // Administrator - zarządza katalogiem i studentami
	RoleStudent UserRole = "student" // Student - przegląda katalog i prosi o wypożyczenia
)

// User reprezentuje tożsamość aktywnej sesji
//
// Rekord jest ulotny: powstaje przy logowaniu (z rekordu studenta albo
// ze stałej tożsamości administratora) i znika przy wylogowaniu.
// Nigdy nie jest zapisywany w magazynie danych.
type User struct {
	ID   string   `json:"id"`
	Name string   `json:"name"`
	Role UserRole `json:"role"`
}

// IsAdmin sprawdza czy użytkownik jest administratorem
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
