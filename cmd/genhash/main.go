// Comando genhash: genera el hash bcrypt de una credencial y lo imprime como
// sentencia INSERT lista para sembrar la tabla users.
//
//	go run ./cmd/genhash -username jefe_bodega -password 'Secreta#2025' -role JEFE_BODEGA
package main

import (
	"flag"
	"fmt"
	"os"

	"golang.org/x/crypto/bcrypt"

	"github.com/repucenter/repucenter-api/internal/domain/entity"
)

func main() {
	username := flag.String("username", "", "nombre de usuario")
	password := flag.String("password", "", "password en texto plano")
	role := flag.String("role", string(entity.RoleOperador), "rol: JEFE_BODEGA u OPERADOR")
	flag.Parse()

	if *username == "" || *password == "" {
		fmt.Fprintln(os.Stderr, "uso: genhash -username <u> -password <p> [-role <r>]")
		os.Exit(2)
	}
	parsedRole, err := entity.ParseRole(*role)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		fmt.Fprintln(os.Stderr, "generar hash:", err)
		os.Exit(1)
	}

	fmt.Printf("INSERT INTO users (username, password_hash, role) VALUES ('%s', '%s', '%s');\n",
		*username, hash, parsedRole)
}
