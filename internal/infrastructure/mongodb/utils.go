package mongodb

import (
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// setIfPresent agrega el campo al $set solo si el puntero viene presente.
// Un puntero a cadena vacía sobrescribe; nil deja el campo intacto.
func setIfPresent(set bson.M, key string, v *string) {
	if v != nil {
		set[key] = *v
	}
}

// substringFold construye un predicado de subcadena sin distinguir mayúsculas.
// El término se escapa con QuoteMeta: los metacaracteres del usuario se
// comparan literalmente.
func substringFold(term string) primitive.Regex {
	return primitive.Regex{Pattern: regexp.QuoteMeta(term), Options: "i"}
}
