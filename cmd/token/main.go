// Command token mints a bearer token signed with the configured key, for local
// development against the API without the identity provider.
//
//	go run ./cmd/token -sub student-1 -roles STUDENT
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	_ "github.com/joho/godotenv/autoload" // Autoload .env file.

	"github.com/campusarena/competition-api/internal/config"
	"github.com/campusarena/competition-api/internal/pkg/jwthelper"
)

func main() {
	configPath := flag.String("config", "./cmd/app/config.yml", "application config")
	subject := flag.String("sub", "", "actor id")
	roles := flag.String("roles", "STUDENT", "comma separated roles: STUDENT, TEACHER, ADMIN")
	ttl := flag.Duration("ttl", jwthelper.DefaultTTL, "token lifetime")
	flag.Parse()

	token, err := mint(*configPath, *subject, *roles, *ttl)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Println(token)
}

func mint(configPath, subject, roles string, ttl time.Duration) (string, error) {
	if subject == "" {
		return "", fmt.Errorf("-sub is required")
	}

	conf, err := config.Load(configPath)
	if err != nil {
		return "", fmt.Errorf("failed to initialize config -> %w", err)
	}
	if conf.API.Environment == config.EnvProduction {
		return "", fmt.Errorf("refusing to mint tokens for %s", config.EnvProduction)
	}

	var roleList []string
	for _, role := range strings.Split(roles, ",") {
		if role = strings.ToUpper(strings.TrimSpace(role)); role != "" {
			roleList = append(roleList, role)
		}
	}

	return jwthelper.GenerateToken([]byte(conf.API.JWTSigningKey), subject, roleList, "", ttl)
}
