package main

import (
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/vfg2006/revenue-dashboard-api/internal/config"
	"github.com/vfg2006/revenue-dashboard-api/internal/domain"
	"github.com/vfg2006/revenue-dashboard-api/internal/usecases/authenticating"
)

// Emite um token assinado com AUTH_SECRET para testar a API localmente.
// Em produção os tokens vêm do provedor de identidade.
func main() {
	email := pflag.String("email", "", "email do usuário")
	name := pflag.String("name", "", "nome exibido")
	role := pflag.String("role", domain.RoleViewer, "papel: admin ou viewer")
	ttl := pflag.Duration("ttl", 12*time.Hour, "validade do token")
	pflag.Parse()

	if *email == "" {
		pflag.Usage()
		os.Exit(2)
	}

	if *role != domain.RoleAdmin && *role != domain.RoleViewer {
		logrus.Fatalf("papel inválido: %s", *role)
	}

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.WithError(err).Fatal("erro ao carregar configuração")
	}

	token, err := authenticating.NewService(cfg).GenerateToken(*email, *name, *role, *ttl)
	if err != nil {
		logrus.WithError(err).Fatal("erro ao gerar token")
	}

	fmt.Println(token)
}
