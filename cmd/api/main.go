package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"

	"github.com/duber-parra/minominapro/backend/internal/config"
	"github.com/duber-parra/minominapro/backend/internal/handler"
	"github.com/duber-parra/minominapro/backend/internal/repository"
	"github.com/duber-parra/minominapro/backend/internal/scheduler"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	/**********************************************
	 * Crear el logger
	 **********************************************/
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	/**********************************************
	 * Cargar la configuración
	 **********************************************/
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("no se pudo cargar la configuración", "error", err)
		return
	}

	/**********************************************
	 * Conectar el almacén clave-valor
	 **********************************************/
	kv, err := connectStorage(cfg)
	if err != nil {
		logger.Error("no se pudo conectar el almacenamiento", "driver", cfg.Storage.Driver, "error", err)
		return
	}

	/**********************************************
	 * Crear el repository y cargar el estado
	 **********************************************/
	repo := repository.NewRepository(cfg, kv)

	locations, err := repo.LoadLocations()
	if err != nil {
		logger.Error("no se pudieron cargar las sedes", "error", err)
		return
	}
	departments, err := repo.LoadDepartments()
	if err != nil {
		logger.Error("no se pudieron cargar los departamentos", "error", err)
		return
	}
	employees, err := repo.LoadEmployees()
	if err != nil {
		logger.Error("no se pudieron cargar los empleados", "error", err)
		return
	}
	schedule, err := repo.LoadSchedule()
	if err != nil {
		logger.Error("no se pudo cargar el calendario", "error", err)
		return
	}
	templateList, err := repo.LoadTemplates()
	if err != nil {
		logger.Error("no se pudieron cargar las plantillas", "error", err)
		return
	}

	/**********************************************
	 * Construir el motor de turnos
	 **********************************************/
	store := scheduler.NewStore(repo.SaveSchedule)
	store.Load(schedule)

	templates := scheduler.NewTemplateManager(repo.SaveTemplates)
	templates.Load(templateList)

	roster := scheduler.NewRoster(store, templates, scheduler.RosterPersistence{
		SaveLocations:   repo.SaveLocations,
		SaveDepartments: repo.SaveDepartments,
		SaveEmployees:   repo.SaveEmployees,
	})
	roster.Load(locations, departments, employees)

	fetchTimeout := time.Duration(cfg.Holidays.FetchTimeout) * time.Second
	holidays := scheduler.NewHolidays(
		scheduler.NewHTTPHolidayProvider(cfg.Holidays.APIURL, cfg.Holidays.Country, fetchTimeout),
		fetchTimeout,
	)

	logger.Info("estado cargado",
		"locations", len(locations),
		"departments", len(departments),
		"employees", len(employees),
		"days", len(schedule),
		"templates", len(templateList),
	)

	/**********************************************
	 * Conectar rabbitmq
	 **********************************************/
	// El envío de reportes es opcional: si rabbitmq no está disponible el
	// servidor arranca igual y el endpoint de reportes responde con error.
	var mailCh *amqp.Channel
	conn, err := amqp.Dial(cfg.RabbitMQ.DSN)
	if err != nil {
		logger.Warn("no se pudo conectar a rabbitmq, los reportes por correo quedan deshabilitados", "error", err)
	} else {
		defer conn.Close()

		mailCh, err = conn.Channel()
		if err != nil {
			logger.Error("no se pudo abrir el canal de rabbitmq", "error", err)
			return
		}
		defer mailCh.Close()

		_, err = mailCh.QueueDeclare(
			"email_queue",
			true,
			false,
			false,
			false,
			nil,
		)
		if err != nil {
			logger.Error("no se pudo declarar la cola de correo", "error", err)
			return
		}
	}

	/**********************************************
	 * Crear el handler
	 **********************************************/
	handler, err := handler.NewHandler(cfg, repo, mailCh, store, roster, templates, holidays)
	if err != nil {
		logger.Error("no se pudo crear el handler", "error", err)
		return
	}
	handler.RegisterRoutes()

	/**********************************************
	 * Arrancar el servidor HTTP
	 **********************************************/
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      handler.Mux,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("arrancando el servidor...", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("no se pudo arrancar el servidor", slog.String("error", err.Error()))
			return
		}
	}()

	<-quit
	logger.Info("apagando el servidor...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("no se pudo apagar el servidor", slog.String("error", err.Error()))
	}
	logger.Info("servidor apagado correctamente")
}

// connectStorage abre el backend del almacén clave-valor según STORAGE_DRIVER.
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

		// sql.Open solo crea el pool, no conecta; hay que hacer ping explícito.
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
