// Package messages holds the user-facing response strings, one catalog per
// deployment language.
package messages

import (
	"fmt"
	"strings"
)

// Catalog is the set of messages returned to API clients.
type Catalog struct {
	AllFieldsRequired       string
	AllFieldsExceptPassword string
	InvalidRequestBody      string
	PasswordTooLong         string
	InternalError           string

	NoUsersFound       string
	UserNotFound       string
	NoUserToDelete     string
	DuplicateUsername  string
	InvalidUserData    string
	UserIDRequired     string
	UserHasNotes       string
	userCreatedFormat  string
	userUpdatedFormat  string
	userDeletedFormat  string
	InvalidCredentials string
	LoggedOut          string

	NoNotesFound      string
	NoteNotFound      string
	DuplicateTitle    string
	DuplicateNoteID   string
	InvalidNoteData   string
	NoteIDRequired    string
	NoteCreated       string
	noteUpdatedFormat string
	noteDeletedFormat string
}

// French reproduces the strings the service has always answered with.
var French = Catalog{
	AllFieldsRequired:       "Tous les champs sont requis",
	AllFieldsExceptPassword: "Tous les champs excepté mot de passe sont requis",
	InvalidRequestBody:      "Corps de requête invalide",
	PasswordTooLong:         "Le mot de passe ne doit pas dépasser 72 octets",
	InternalError:           "Erreur interne du serveur",

	NoUsersFound:       "Utilisateur introuvable",
	UserNotFound:       "Utilisateur introuvable",
	NoUserToDelete:     "Pas d'utilisateur trouvé",
	DuplicateUsername:  "Nom d'utilisateur en double",
	InvalidUserData:    "Données utilisateur invalides reçues",
	UserIDRequired:     "Requiert l'ID d'un utilisateur",
	UserHasNotes:       "L'utilisateur a attribué des notes",
	userCreatedFormat:  "Nouvel utilisateur %s créer",
	userUpdatedFormat:  "%s Mis à jour",
	userDeletedFormat:  "Username %s with ID %s deleted",
	InvalidCredentials: "Identifiants invalides",
	LoggedOut:          "Déconnecté",

	NoNotesFound:      "Aucun ticket trouvé",
	NoteNotFound:      "Ticket introuvable",
	DuplicateTitle:    "Nom du ticket en double",
	DuplicateNoteID:   "ID du ticket en double",
	InvalidNoteData:   "Données du ticket invalide",
	NoteIDRequired:    "L'ID du ticket est requis",
	NoteCreated:       "Nouveau ticket créer",
	noteUpdatedFormat: "'%s' Mis à jour",
	noteDeletedFormat: "Ticket '%s' avec l'ID %s est supprimé",
}

var English = Catalog{
	AllFieldsRequired:       "All fields are required",
	AllFieldsExceptPassword: "All fields except password are required",
	InvalidRequestBody:      "Invalid request body",
	PasswordTooLong:         "Password must not exceed 72 bytes",
	InternalError:           "Internal server error",

	NoUsersFound:       "No users found",
	UserNotFound:       "User not found",
	NoUserToDelete:     "User not found",
	DuplicateUsername:  "Duplicate username",
	InvalidUserData:    "Invalid user data received",
	UserIDRequired:     "User ID required",
	UserHasNotes:       "User has assigned notes",
	userCreatedFormat:  "New user %s created",
	userUpdatedFormat:  "%s updated",
	userDeletedFormat:  "Username %s with ID %s deleted",
	InvalidCredentials: "Invalid credentials",
	LoggedOut:          "Logged out",

	NoNotesFound:      "No notes found",
	NoteNotFound:      "Note not found",
	DuplicateTitle:    "Duplicate note title",
	DuplicateNoteID:   "Duplicate note title",
	InvalidNoteData:   "Invalid note data received",
	NoteIDRequired:    "Note ID required",
	NoteCreated:       "New note created",
	noteUpdatedFormat: "'%s' updated",
	noteDeletedFormat: "Note '%s' with ID %s deleted",
}

// ForLang returns the catalog for a language tag such as "fr" or "en-US".
// Unknown languages get the French catalog.
func ForLang(lang string) Catalog {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if strings.HasPrefix(lang, "en") {
		return English
	}
	return French
}

func (c Catalog) UserCreated(username string) string {
	return fmt.Sprintf(c.userCreatedFormat, username)
}

func (c Catalog) UserUpdated(username string) string {
	return fmt.Sprintf(c.userUpdatedFormat, username)
}

func (c Catalog) UserDeleted(username, id string) string {
	return fmt.Sprintf(c.userDeletedFormat, username, id)
}

func (c Catalog) NoteUpdated(title string) string {
	return fmt.Sprintf(c.noteUpdatedFormat, title)
}

func (c Catalog) NoteDeleted(title, id string) string {
	return fmt.Sprintf(c.noteDeletedFormat, title, id)
}
