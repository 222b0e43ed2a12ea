// Comando seed: puebla la base de datos con datos pseudoaleatorios
// para desarrollo local y pruebas manuales de la API.
package main

import (
	"database/sql"
	"flag"
	"fmt"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/davicafu/mirtech-api/internal/config"
	dbPostgres "github.com/davicafu/mirtech-api/internal/shared/infra/db/postgres"
	dbSQLite "github.com/davicafu/mirtech-api/internal/shared/infra/db/sqlite"
	"github.com/davicafu/mirtech-api/pkg/logger"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

var categories = []string{"tools", "electronics", "furniture", "toys", "books"}

var adjectives = []string{"Compact", "Deluxe", "Eco", "Smart", "Classic", "Portable", "Heavy-Duty", "Mini"}

var nouns = []string{"Widget", "Gadget", "Lamp", "Chair", "Drill", "Speaker", "Notebook", "Kit"}

func main() {
	products := flag.Int("products", 50, "número de productos a crear")
	users := flag.Int("users", 20, "número de usuarios a crear")
	orders := flag.Int("orders", 100, "número de pedidos a crear")
	maxLines := flag.Int("max-lines", 5, "máximo de transacciones por pedido")
	seed := flag.Int64("seed", time.Now().UnixNano(), "semilla del generador aleatorio")
	flag.Parse()

	log, err := logger.New()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	cfg := config.LoadConfig()
	rng := rand.New(rand.NewSource(*seed))

	// phFor devuelve el placeholder según el dialecto.
	postgres := cfg.PostgresURL != ""
	ph := func(i int) string {
		if postgres {
			return fmt.Sprintf("$%d", i)
		}
		return "?"
	}

	var db *sql.DB
	if postgres {
		db, err = sql.Open("pgx", cfg.PostgresURL)
		if err != nil {
			log.Fatal("failed to open PostgreSQL", zap.Error(err))
		}
		if err := dbPostgres.InitSchema(db); err != nil {
			log.Fatal("failed to initialize schema", zap.Error(err))
		}
	} else {
		db, err = sql.Open("sqlite", cfg.SQLitePath)
		if err != nil {
			log.Fatal("failed to open SQLite", zap.Error(err))
		}
		if err := dbSQLite.InitSchema(db); err != nil {
			log.Fatal("failed to initialize schema", zap.Error(err))
		}
	}
	defer db.Close()

	tx, err := db.Begin()
	if err != nil {
		log.Fatal("failed to begin transaction", zap.Error(err))
	}
	defer tx.Rollback()

	// ---------------- Products ----------------
	productIDs := make([]int64, 0, *products)
	productPrices := make(map[int64]float64, *products)
	for i := 0; i < *products; i++ {
		name := fmt.Sprintf("%s %s %d", adjectives[rng.Intn(len(adjectives))], nouns[rng.Intn(len(nouns))], i+1)
		description := fmt.Sprintf("Sample description for %s", name)
		price := float64(rng.Intn(99000)+100) / 100.0 // entre 1.00 y 990.99
		category := categories[rng.Intn(len(categories))]

		id, err := insertReturningID(tx, postgres,
			fmt.Sprintf("INSERT INTO products (name, description, price, category) VALUES (%s, %s, %s, %s)",
				ph(1), ph(2), ph(3), ph(4)),
			name, description, price, category)
		if err != nil {
			log.Fatal("failed to insert product", zap.Error(err))
		}
		productIDs = append(productIDs, id)
		productPrices[id] = price
	}

	// ---------------- Users ----------------
	userIDs := make([]int64, 0, *users)
	for i := 0; i < *users; i++ {
		name := fmt.Sprintf("user%03d", i+1)
		email := fmt.Sprintf("%s@example.com", name)

		id, err := insertReturningID(tx, postgres,
			fmt.Sprintf("INSERT INTO users (name, email) VALUES (%s, %s)", ph(1), ph(2)),
			name, email)
		if err != nil {
			log.Fatal("failed to insert user", zap.Error(err))
		}
		userIDs = append(userIDs, id)
	}

	// ------------- Orders + lines -------------
	now := time.Now().UTC()
	var totalLines int
	for i := 0; i < *orders; i++ {
		userID := userIDs[rng.Intn(len(userIDs))]
		// Pedidos repartidos en los últimos 90 días.
		createdAt := now.Add(-time.Duration(rng.Intn(90*24)) * time.Hour)

		orderID, err := insertReturningID(tx, postgres,
			fmt.Sprintf("INSERT INTO orders (user_id, created_at) VALUES (%s, %s)", ph(1), ph(2)),
			userID, createdAt)
		if err != nil {
			log.Fatal("failed to insert order", zap.Error(err))
		}

		lines := rng.Intn(*maxLines) + 1
		for j := 0; j < lines; j++ {
			productID := productIDs[rng.Intn(len(productIDs))]
			quantity := rng.Intn(4) + 1
			totalPrice := float64(quantity) * productPrices[productID]

			_, err := tx.Exec(
				fmt.Sprintf("INSERT INTO transactions (order_id, product_id, quantity, total_price) VALUES (%s, %s, %s, %s)",
					ph(1), ph(2), ph(3), ph(4)),
				orderID, productID, quantity, totalPrice)
			if err != nil {
				log.Fatal("failed to insert transaction", zap.Error(err))
			}
			totalLines++
		}
	}

	if err := tx.Commit(); err != nil {
		log.Fatal("failed to commit seed data", zap.Error(err))
	}

	log.Info("✅ Seed completado",
		zap.Int("products", *products),
		zap.Int("users", *users),
		zap.Int("orders", *orders),
		zap.Int("transactions", totalLines),
		zap.Int64("seed", *seed),
	)
}

// insertReturningID abstrae la diferencia entre RETURNING id (PostgreSQL)
// y LastInsertId (SQLite).
func insertReturningID(tx *sql.Tx, postgres bool, query string, args ...interface{}) (int64, error) {
	if postgres {
		var id int64
		err := tx.QueryRow(query+" RETURNING id", args...).Scan(&id)
		return id, err
	}

	res, err := tx.Exec(query, args...)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}
