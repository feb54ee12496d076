package main

import (
	"github.com/bwmarrin/snowflake"
	"github.com/joho/godotenv"
	"github.com/smallbiznis/billpoint/internal/activation"
	"github.com/smallbiznis/billpoint/internal/audit"
	"github.com/smallbiznis/billpoint/internal/auth"
	"github.com/smallbiznis/billpoint/internal/authorization"
	"github.com/smallbiznis/billpoint/internal/clock"
	"github.com/smallbiznis/billpoint/internal/config"
	"github.com/smallbiznis/billpoint/internal/history"
	"github.com/smallbiznis/billpoint/internal/kvstore"
	"github.com/smallbiznis/billpoint/internal/migration"
	"github.com/smallbiznis/billpoint/internal/notify"
	"github.com/smallbiznis/billpoint/internal/observability"
	"github.com/smallbiznis/billpoint/internal/payment"
	"github.com/smallbiznis/billpoint/internal/receipt"
	"github.com/smallbiznis/billpoint/internal/seed"
	"github.com/smallbiznis/billpoint/internal/server"
	"github.com/smallbiznis/billpoint/internal/settings"
	"github.com/smallbiznis/billpoint/pkg/db"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

func main() {
	_ = godotenv.Load()

	app := fx.New(
		config.Module,
		observability.Module,
		fx.Provide(func() *snowflake.Node {
			node, err := snowflake.NewNode(1)
			if err != nil {
				panic(err)
			}
			return node
		}),
		db.Module,
		clock.Module,

		fx.Invoke(func(conn *gorm.DB, node *snowflake.Node, cfg config.Config) error {
			if err := migration.RunMigrations(conn); err != nil {
				return err
			}
			if cfg.Bootstrap.EnsureDefaultOwner {
				return seed.EnsureDefaultAdmin(conn, node, cfg.Bootstrap.DefaultAdminPassword)
			}
			return nil
		}),

		kvstore.Module,
		settings.Module,
		notify.Module,
		payment.Module,
		history.Module,
		receipt.Module,
		audit.Module,
		auth.Module,
		authorization.Module,
		activation.Module,

		fx.Provide(server.NewEngine),
		fx.Provide(server.NewServer),
		fx.Invoke(func(s *server.Server) {
			s.RegisterRoutes()
		}),
		fx.Invoke(server.RunHTTP),
	)
	app.Run()
}
