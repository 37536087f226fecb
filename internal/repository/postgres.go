// Package repository содержит реализацию хранилища документов в PostgreSQL.
//
// Персистентное состояние сервиса — три именованных JSON-документа
// (заказы, клиенты, настройки лояльности) плюс зеркало меню для админки.
// Версионирования схемы нет: отсутствующий документ читается как пустая
// коллекция или настройки по умолчанию.
package repository

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/selvadigital/storefront-system/internal/catalog"
	"github.com/selvadigital/storefront-system/internal/model"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Ключи персистентных документов. Совпадают с ключами локального хранилища
// исходной системы.
const (
	keyOrders        = "gastro_orders"
	keyCustomers     = "gastro_customers"
	keyLoyaltyConfig = "gastro_loyalty_config"
	keyMenuProducts  = "gastro_menu_products"
)

// PostgresRepository предоставляет доступ к хранилищу документов в PostgreSQL.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository создаёт новый репозиторий и инициализирует схему БД через миграции.
func NewPostgresRepository(dsn string) (*PostgresRepository, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse pool config: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	r := &PostgresRepository{pool: pool}

	if err := r.runMigrations(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return r, nil
}

func (r *PostgresRepository) runMigrations(ctx context.Context) error {
	db := stdlib.OpenDBFromPool(r.pool)
	defer db.Close()

	goose.SetBaseFS(migrationsFS)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("set dialect: %w", err)
	}

	if err := goose.UpContext(ctx, db, "migrations"); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	return nil
}

func (r *PostgresRepository) withRetry(ctx context.Context, fn func() error) error {
	var err error
	delays := []time.Duration{1 * time.Second, 3 * time.Second, 5 * time.Second}

	for i := 0; i <= len(delays); i++ {
		err = fn()
		if err == nil {
			return nil
		}

		// Если ошибка контекста — выходим сразу
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return err
		}

		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == pgerrcode.SerializationFailure || pgErr.Code == pgerrcode.DeadlockDetected {
				if i < len(delays) {
					time.Sleep(delays[i])
					continue
				}
			}
		}

		if isConnectionError(err) {
			if i < len(delays) {
				time.Sleep(delays[i])
				continue
			}
		}

		break
	}
	return err
}

func isConnectionError(err error) bool {
	// Упрощенная проверка на ошибки соединения
	return strings.Contains(err.Error(), "connection refused") ||
		strings.Contains(err.Error(), "broken pipe") ||
		strings.Contains(err.Error(), "connection reset by peer")
}

// Close закрывает пул соединений с БД.
func (r *PostgresRepository) Close() error {
	r.pool.Close()
	return nil
}

func (r *PostgresRepository) getDocument(ctx context.Context, key string) ([]byte, bool, error) {
	var value []byte
	err := r.withRetry(ctx, func() error {
		return r.pool.QueryRow(ctx,
			`SELECT value FROM documents WHERE key = $1`,
			key,
		).Scan(&value)
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("get document %s: %w", key, err)
	}
	return value, true, nil
}

func (r *PostgresRepository) putDocument(ctx context.Context, key string, value []byte) error {
	err := r.withRetry(ctx, func() error {
		_, execErr := r.pool.Exec(ctx,
			`INSERT INTO documents (key, value, updated_at) VALUES ($1, $2, now())
			 ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`,
			key, value,
		)
		return execErr
	})
	if err != nil {
		return fmt.Errorf("put document %s: %w", key, err)
	}
	return nil
}

func marshalDocument(v any) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshal document: %w", err)
	}
	return data, nil
}

func unmarshalDocument(data []byte, v any) error {
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("unmarshal document: %w", err)
	}
	return nil
}

// LoadOrders возвращает все заказы. Отсутствующий документ — пустая коллекция.
func (r *PostgresRepository) LoadOrders(ctx context.Context) ([]model.Order, error) {
	data, ok, err := r.getDocument(ctx, keyOrders)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []model.Order{}, nil
	}

	var orders []model.Order
	if err := unmarshalDocument(data, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// SaveOrders сохраняет коллекцию заказов целиком.
func (r *PostgresRepository) SaveOrders(ctx context.Context, orders []model.Order) error {
	data, err := marshalDocument(orders)
	if err != nil {
		return err
	}
	return r.putDocument(ctx, keyOrders, data)
}

// LoadCustomers возвращает всех клиентов. Отсутствующий документ — пустая коллекция.
func (r *PostgresRepository) LoadCustomers(ctx context.Context) ([]model.Customer, error) {
	data, ok, err := r.getDocument(ctx, keyCustomers)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []model.Customer{}, nil
	}

	var customers []model.Customer
	if err := unmarshalDocument(data, &customers); err != nil {
		return nil, err
	}
	return customers, nil
}

// SaveCustomers сохраняет коллекцию клиентов целиком.
func (r *PostgresRepository) SaveCustomers(ctx context.Context, customers []model.Customer) error {
	data, err := marshalDocument(customers)
	if err != nil {
		return err
	}
	return r.putDocument(ctx, keyCustomers, data)
}

// LoadLoyaltyConfig возвращает настройки лояльности.
// Отсутствующий документ читается как настройки по умолчанию.
func (r *PostgresRepository) LoadLoyaltyConfig(ctx context.Context) (model.LoyaltyConfig, error) {
	data, ok, err := r.getDocument(ctx, keyLoyaltyConfig)
	if err != nil {
		return model.LoyaltyConfig{}, err
	}
	if !ok {
		return catalog.DefaultLoyaltyConfig(), nil
	}

	var cfg model.LoyaltyConfig
	if err := unmarshalDocument(data, &cfg); err != nil {
		return model.LoyaltyConfig{}, err
	}
	return cfg, nil
}

// SaveLoyaltyConfig сохраняет настройки лояльности.
func (r *PostgresRepository) SaveLoyaltyConfig(ctx context.Context, cfg model.LoyaltyConfig) error {
	data, err := marshalDocument(cfg)
	if err != nil {
		return err
	}
	return r.putDocument(ctx, keyLoyaltyConfig, data)
}

// LoadMenuProducts возвращает зеркало меню админки и признак его существования.
// Первое чтение возвращает ok=false: сервис засеивает зеркало статическим каталогом.
func (r *PostgresRepository) LoadMenuProducts(ctx context.Context) ([]model.Product, bool, error) {
	data, ok, err := r.getDocument(ctx, keyMenuProducts)
	if err != nil {
		return nil, false, err
	}
	if !ok {
		return nil, false, nil
	}

	var products []model.Product
	if err := unmarshalDocument(data, &products); err != nil {
		return nil, false, err
	}
	return products, true, nil
}

// SaveMenuProducts сохраняет зеркало меню целиком.
func (r *PostgresRepository) SaveMenuProducts(ctx context.Context, products []model.Product) error {
	data, err := marshalDocument(products)
	if err != nil {
		return err
	}
	return r.putDocument(ctx, keyMenuProducts, data)
}
