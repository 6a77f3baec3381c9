package hash

import (
	"crypto/sha256"
	"encoding/hex"
)

// SHA256Hex devuelve el digest SHA-256 en hexadecimal de la credencial.
// El esquema es deliberadamente determinista y sin sal: los hashes almacenados
// se comparan por igualdad exacta contra los datos ya existentes en la base.
func SHA256Hex(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}
