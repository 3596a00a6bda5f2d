// seed puebla la base con los datos mínimos de operación: catálogo de
// servicios con precios desde un CSV, medios de pago, tipos de transacción y
// una cuenta admin inicial.
//
// Uso: go run ./cmd/seed [-latin1] [ruta/catalogo.csv]
// El CSV tiene cabecera: categoria,servicio,descripcion,precio,moneda
// Con -latin1 el archivo se decodifica desde ISO-8859-1 (exportes de Excel).
// Las filas malformadas se registran y se saltan; el resto se carga igual.
package main

import (
	"context"
	"encoding/csv"
	"errors"
	"flag"
	"io"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Gestion-api/pkg/config"
	"github.com/jhoicas/Gestion-api/pkg/logger"
)

func main() {
	latin1 := flag.Bool("latin1", false, "decodificar el CSV desde ISO-8859-1")
	flag.Parse()

	csvPath := "catalogo.csv"
	if flag.NArg() > 0 {
		csvPath = flag.Arg(0)
	}

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(cfg.App)

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	seedBaseCatalogs(log, pool)
	seedAdminAccount(log, pool)
	seedServiceCatalog(log, pool, csvPath, *latin1, cfg.Billing.DefaultCurrency)
}

// seedBaseCatalogs inserta medios de pago y tipos de transacción. Los
// duplicados de corridas anteriores se ignoran.
func seedBaseCatalogs(log *logger.Logger, q postgres.Querier) {
	methodRepo := postgres.NewPaymentMethodRepository(q)
	for _, name := range []string{"Efectivo", "Transferencia", "Tarjeta", "PSE"} {
		err := methodRepo.Create(&entity.PaymentMethod{
			ID:        uuid.New().String(),
			Name:      name,
			Active:    true,
			CreatedAt: time.Now(),
		})
		if err != nil && !errors.Is(err, domain.ErrDuplicate) {
			log.Fatal().Err(err).Str("method", name).Msg("sembrar medio de pago")
		}
	}

	txTypeRepo := postgres.NewTransactionTypeRepository(q)
	for _, name := range []string{"Pago", "Anticipo", "Reembolso"} {
		err := txTypeRepo.Create(&entity.TransactionType{
			ID:        uuid.New().String(),
			Name:      name,
			CreatedAt: time.Now(),
		})
		if err != nil && !errors.Is(err, domain.ErrDuplicate) {
			log.Fatal().Err(err).Str("type", name).Msg("sembrar tipo de transacción")
		}
	}
	log.Info().Msg("medios de pago y tipos de transacción listos")
}

// seedAdminAccount crea la cuenta admin inicial si no existe.
// Email y contraseña se toman de SEED_ADMIN_EMAIL / SEED_ADMIN_PASSWORD.
func seedAdminAccount(log *logger.Logger, q postgres.Querier) {
	email := os.Getenv("SEED_ADMIN_EMAIL")
	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if email == "" || password == "" {
		log.Warn().Msg("SEED_ADMIN_EMAIL/SEED_ADMIN_PASSWORD no definidos, se omite la cuenta admin")
		return
	}

	accountRepo := postgres.NewAccountRepository(q)
	existing, err := accountRepo.FindByEmail(email)
	if err != nil {
		log.Fatal().Err(err).Msg("buscar cuenta admin")
	}
	if existing != nil {
		log.Info().Str("email", email).Msg("la cuenta admin ya existe")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("hash de contraseña")
	}
	now := time.Now()
	err = accountRepo.Create(&entity.Account{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: string(hash),
		Name:         "Administrador",
		Role:         entity.RoleAdmin,
		Status:       "active",
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("crear cuenta admin")
	}
	log.Info().Str("email", email).Msg("cuenta admin creada")
}

// seedServiceCatalog carga categorías, servicios y precios desde el CSV.
func seedServiceCatalog(log *logger.Logger, q postgres.Querier, csvPath string, latin1 bool, defaultCurrency string) {
	f, err := os.Open(csvPath)
	if err != nil {
		log.Warn().Err(err).Str("path", csvPath).Msg("CSV de catálogo no disponible, se omite")
		return
	}
	defer f.Close()

	var reader io.Reader = f
	if latin1 {
		reader = transform.NewReader(f, charmap.ISO8859_1.NewDecoder())
	}

	categoryRepo := postgres.NewServiceCategoryRepository(q)
	serviceRepo := postgres.NewServiceRepository(q)
	priceRepo := postgres.NewPriceRepository(q)

	// Categorías ya existentes, indexadas por nombre.
	categories := make(map[string]string)
	existing, err := categoryRepo.List(1000, 0)
	if err != nil {
		log.Fatal().Err(err).Msg("listar categorías")
	}
	for _, cat := range existing {
		categories[strings.ToLower(cat.Name)] = cat.ID
	}

	cr := csv.NewReader(reader)
	cr.FieldsPerRecord = -1 // se valida por fila para poder saltar las malas
	cr.TrimLeadingSpace = true

	var loaded, skipped, line int
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			log.Warn().Err(err).Int("line", line).Msg("fila ilegible, se salta")
			skipped++
			continue
		}
		if line == 1 && strings.EqualFold(strings.TrimSpace(record[0]), "categoria") {
			continue // cabecera
		}
		if len(record) < 4 {
			log.Warn().Int("line", line).Int("fields", len(record)).Msg("fila incompleta, se salta")
			skipped++
			continue
		}

		categoryName := strings.TrimSpace(record[0])
		serviceName := strings.TrimSpace(record[1])
		description := strings.TrimSpace(record[2])
		amount, err := decimal.NewFromString(strings.TrimSpace(record[3]))
		if err != nil || categoryName == "" || serviceName == "" || amount.IsNegative() {
			log.Warn().Int("line", line).Msg("fila inválida, se salta")
			skipped++
			continue
		}
		currency := defaultCurrency
		if len(record) > 4 && strings.TrimSpace(record[4]) != "" {
			currency = strings.ToUpper(strings.TrimSpace(record[4]))
		}

		now := time.Now()
		categoryID, ok := categories[strings.ToLower(categoryName)]
		if !ok {
			categoryID = uuid.New().String()
			err := categoryRepo.Create(&entity.ServiceCategory{
				ID:        categoryID,
				Name:      categoryName,
				CreatedAt: now,
				UpdatedAt: now,
			})
			if err != nil {
				log.Fatal().Err(err).Str("category", categoryName).Msg("crear categoría")
			}
			categories[strings.ToLower(categoryName)] = categoryID
		}

		serviceID := uuid.New().String()
		err = serviceRepo.Create(&entity.Service{
			ID:          serviceID,
			CategoryID:  categoryID,
			Name:        serviceName,
			Description: description,
			Active:      true,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
		if err != nil {
			if errors.Is(err, domain.ErrDuplicate) {
				log.Warn().Int("line", line).Str("service", serviceName).Msg("servicio duplicado, se salta")
				skipped++
				continue
			}
			log.Fatal().Err(err).Str("service", serviceName).Msg("crear servicio")
		}

		err = priceRepo.Create(&entity.Price{
			ID:            uuid.New().String(),
			ServiceID:     serviceID,
			Amount:        amount,
			Currency:      currency,
			EffectiveDate: now,
			CreatedAt:     now,
		})
		if err != nil {
			log.Fatal().Err(err).Str("service", serviceName).Msg("crear precio")
		}
		loaded++
	}

	log.Info().Int("loaded", loaded).Int("skipped", skipped).Msg("catálogo de servicios cargado")
}
