package entity

import "time"

// FormResponse representa una respuesta del formulario público de contacto.
type FormResponse struct {
	ID        string
	Name      string
	Email     string
	Subject   string
	Message   string
	CreatedAt time.Time
}
