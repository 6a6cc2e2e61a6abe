package handlers

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"student-library-system/internal/library"
	"student-library-system/internal/models"
)

// StudentsHandler obsługuje zarządzanie studentami (tylko admin)
type StudentsHandler struct {
	lib *library.Library
}

// NewStudentsHandler tworzy nowy handler studentów
func NewStudentsHandler(lib *library.Library) *StudentsHandler {
	return &StudentsHandler{lib: lib}
}

// studentResponse to rekord studenta bez hasha hasła
type studentResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	RollNo   string `json:"rollNo"`
}

func toStudentResponse(s models.Student) studentResponse {
	return studentResponse{
		ID:       s.ID,
		Name:     s.Name,
		Username: s.Username,
		RollNo:   s.RollNo,
	}
}

// List zwraca listę studentów (GET /students)
func (h *StudentsHandler) List(w http.ResponseWriter, r *http.Request) {
	students := h.lib.Students()

	out := make([]studentResponse, 0, len(students))
	for _, s := range students {
		out = append(out, toStudentResponse(s))
	}

	respondJSON(w, http.StatusOK, out)
}

// Update edytuje dane studenta (PUT /students/{id})
//
// Puste hasło w żądaniu zachowuje dotychczasowe.
func (h *StudentsHandler) Update(w http.ResponseWriter, r *http.Request) {
	var student models.Student
	if err := decodeBody(r, &student); err != nil {
		respondError(w, err)
		return
	}
	student.ID = chi.URLParam(r, "id")

	if err := h.lib.UpdateStudent(&student); err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, toStudentResponse(student))
}

// Delete usuwa studenta (DELETE /students/{id})
//
// Student z wypożyczonymi książkami jest chroniony przed usunięciem.
func (h *StudentsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	studentID := chi.URLParam(r, "id")

	if err := h.lib.DeleteStudent(studentID); err != nil {
		respondError(w, err)
		return
	}

	log.Printf("Usunięto studenta: %s", studentID)
	respondJSON(w, http.StatusOK, map[string]string{"message": "student został usunięty"})
}
