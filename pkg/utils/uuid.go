package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

const violationIDLength = 12

// GenerateID gera um identificador curto para registros de auditoria
func GenerateID() (string, error) {
	return gonanoid.Generate(characters, violationIDLength)
}
