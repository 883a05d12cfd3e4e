package main

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	html "github.com/gofiber/template/html/v2"
	"github.com/joho/godotenv"

	"dairydelight/internal/catalog"
	"dairydelight/internal/config"
	"dairydelight/internal/http/handlers"
	"dairydelight/internal/kv"
	applog "dairydelight/internal/log"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("[config] no .env file: %v", err)
	}
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	applog.Init(cfg.LogLevel)

	// Snapshot store: Redis when configured, SQLite file otherwise.
	var snapshots kv.Store
	if cfg.RedisURL != "" {
		rs, err := kv.OpenRedis(cfg.RedisURL)
		if err != nil {
			log.Fatal(err)
		}
		defer rs.Close()
		snapshots = rs
	} else {
		ss, err := kv.OpenSQLite(cfg.SnapshotDSN)
		if err != nil {
			log.Fatal(err)
		}
		defer ss.Close()
		snapshots = ss
	}

	// Catalog starts from the seed and refreshes once from the mock feed.
	// A fetch failure only logs; prior state stays intact.
	store := catalog.NewStore(catalog.SeedProducts())
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := store.LoadFrom(ctx, catalog.SeedFetcher{}); err != nil {
			applog.Error(nil, "catalog.fetch.fail", err, nil)
		}
	}()

	engine := html.New(cfg.TemplateDir, ".html")
	engine.Reload(true)

	app := fiber.New(fiber.Config{
		Views: engine,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			applog.Error(c, "server.error", err, nil)
			// Avoid leaking internals; best-effort render
			if rerr := c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{
				"Message": "Something went wrong. Please try again.",
			}); rerr != nil {
				return c.Status(fiber.StatusInternalServerError).SendString("Something went wrong. Please try again.")
			}
			return nil
		},
	})
	app.Server().MaxRequestBodySize = 1 << 20 // 1 MiB

	// ---------- Middlewares ----------
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(helmet.New())
	app.Use(limiter.New(limiter.Config{
		Max:        60,
		Expiration: time.Minute,
	}))
	app.Use(csrf.New(csrf.Config{
		KeyLookup:      "form:csrf",
		CookieName:     "csrf_",
		CookieSameSite: "Lax",
		CookieSecure:   false, // set true behind HTTPS
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			applog.Security(c, "csrf.fail", map[string]any{"form": c.FormValue("csrf")})
			return c.Status(fiber.StatusForbidden).Render("notfound", fiber.Map{"Message": "Security check failed. Please refresh and try again."})
		},
	}))
	app.Use(func(c *fiber.Ctx) error {
		if tok := c.Locals("csrf"); tok != nil {
			c.Locals("CSRFToken", tok.(string))
		}
		return c.Next()
	})

	// ---------- Routes ----------
	deps := handlers.NewDeps(store, snapshots)

	app.Get("/", deps.ShopHandler.Home)
	app.Get("/products", deps.ShopHandler.Products)
	app.Get("/product/:id", deps.ShopHandler.Detail)

	app.Get("/cart", deps.CartHandler.View)
	app.Post("/cart", deps.CartHandler.Add)
	app.Post("/cart/update", deps.CartHandler.Update)
	app.Post("/cart/remove", deps.CartHandler.Remove)
	app.Post("/cart/clear", deps.CartHandler.Clear)
	app.Post("/coupon", deps.CartHandler.ApplyCoupon)
	app.Post("/coupon/remove", deps.CartHandler.RemoveCoupon)

	admin := app.Group("/admin")
	admin.Get("/products", deps.AdminHandler.Products)
	admin.Post("/products", deps.AdminHandler.Create)
	admin.Post("/products/:id", deps.AdminHandler.Update)
	admin.Post("/products/:id/delete", deps.AdminHandler.Delete)

	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(404).Render("notfound", fiber.Map{"Message": "Page not found"})
	})

	log.Fatal(app.Listen(":" + cfg.Port))
}
