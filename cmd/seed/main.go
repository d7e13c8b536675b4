package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/duber-parra/minominapro/backend/internal/config"
	"github.com/duber-parra/minominapro/backend/internal/repository"
	"github.com/duber-parra/minominapro/backend/internal/seed"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	var op int
	var n int

	flag.IntVar(&op, "op", 0, "operación a ejecutar (1: insertar catálogo de sedes y departamentos, 2: insertar empleados aleatorios, 3: llenar la semana actual, 4: todo lo anterior)")
	flag.IntVar(&n, "n", 10, "cantidad de empleados a insertar")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Cargar la configuración
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("no se pudo cargar la configuración", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Conectar el almacén clave-valor
	kv, err := connectStorage(cfg)
	if err != nil {
		logger.Error("no se pudo conectar el almacenamiento", "driver", cfg.Storage.Driver, "error", err)
		return
	}

	repo := repository.NewRepository(cfg, kv)

	switch op {
	case 0:
		slog.Error("no se indicó ninguna operación")
	case 1:
		if _, _, err := seed.Catalog(repo); err != nil {
			slog.Error("no se pudo insertar el catálogo", slog.String("error", err.Error()))
		}
	case 2:
		if n <= 0 {
			slog.Error("la cantidad de empleados debe ser positiva")
			return
		}
		locations, err := repo.LoadLocations()
		if err != nil {
			slog.Error("no se pudieron cargar las sedes", slog.String("error", err.Error()))
			return
		}
		if _, err := seed.Employees(repo, locations, n); err != nil {
			slog.Error("no se pudieron insertar los empleados", slog.String("error", err.Error()))
		}
	case 3:
		departments, err := repo.LoadDepartments()
		if err != nil {
			slog.Error("no se pudieron cargar los departamentos", slog.String("error", err.Error()))
			return
		}
		employees, err := repo.LoadEmployees()
		if err != nil {
			slog.Error("no se pudieron cargar los empleados", slog.String("error", err.Error()))
			return
		}
		if err := seed.DemoWeek(repo, departments, employees); err != nil {
			slog.Error("no se pudo llenar la semana de demostración", slog.String("error", err.Error()))
		}
	case 4:
		if n <= 0 {
			slog.Error("la cantidad de empleados debe ser positiva")
			return
		}
		locations, departments, err := seed.Catalog(repo)
		if err != nil {
			slog.Error("no se pudo insertar el catálogo", slog.String("error", err.Error()))
			return
		}
		employees, err := seed.Employees(repo, locations, n)
		if err != nil {
			slog.Error("no se pudieron insertar los empleados", slog.String("error", err.Error()))
			return
		}
		if err := seed.DemoWeek(repo, departments, employees); err != nil {
			slog.Error("no se pudo llenar la semana de demostración", slog.String("error", err.Error()))
		}
	default:
		slog.Error("la operación indicada no existe")
	}
}

func connectStorage(cfg *config.Config) (repository.KVStore, error) {
	switch cfg.Storage.Driver {
	case "redis":
		rdb := redis.NewClient(&redis.Options{
			Addr:     fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port),
			Password: cfg.Redis.Password,
			DB:       0,
		})

		ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Storage.OperationTimeout)*time.Second)
		defer cancel()
		if err := rdb.Ping(ctx).Err(); err != nil {
			return nil, fmt.Errorf("no se pudo conectar a redis: %w", err)
		}
		return repository.NewRedisStore(rdb), nil
	case "postgres":
		dbpool, err := sql.Open("pgx", cfg.Database.DSN)
		if err != nil {
			return nil, fmt.Errorf("no se pudo crear el pool de conexiones: %w", err)
		}

		dbpool.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		dbpool.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		dbpool.SetConnMaxIdleTime(time.Duration(cfg.Database.MaxIdleTime) * time.Second)

		ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Database.ConnectTimeout)*time.Second)
		defer cancel()

		if err := dbpool.PingContext(ctx); err != nil {
			return nil, fmt.Errorf("no se pudo conectar a la base de datos: %w", err)
		}

		pg := repository.NewPostgresStore(cfg, dbpool)
		if err := pg.EnsureSchema(ctx); err != nil {
			return nil, fmt.Errorf("no se pudo preparar el esquema: %w", err)
		}
		return pg, nil
	default:
		return nil, fmt.Errorf("driver de almacenamiento desconocido: %q", cfg.Storage.Driver)
	}
}
