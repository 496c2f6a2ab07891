// Package wiring assembles repositories, collaborators and use cases from
// the loaded configuration. Both binaries build the same container.
package wiring

import (
	"context"
	"fmt"

	"pcg_compliance/internal/adapter/persistence/memory"
	"pcg_compliance/internal/adapter/persistence/repository"
	"pcg_compliance/internal/config"
	"pcg_compliance/internal/domain/entities"
	"pcg_compliance/internal/infrastructure/auth"
	"pcg_compliance/internal/infrastructure/blobstore"
	"pcg_compliance/internal/infrastructure/database"
	"pcg_compliance/internal/infrastructure/pdf"
	"pcg_compliance/internal/usecase"
	"pcg_compliance/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/rs/zerolog"
)

type Container struct {
	Config *config.Config
	Log    zerolog.Logger

	Companies    interfaces.ICompanyRepository
	Calendars    interfaces.ICalendarRepository
	Periods      interfaces.IPeriodRepository
	Submissions  interfaces.ISubmissionRepository
	Requirements interfaces.IRequirementRepository
	Blobs        interfaces.IBlobStore

	PeriodUseCase      usecase.IPeriodUseCase
	SchedulerUseCase   usecase.ISchedulerUseCase
	SubmissionUseCase  usecase.ISubmissionUseCase
	StatusUseCase      usecase.IComplianceStatusUseCase
	CalendarUseCase    usecase.ICalendarUseCase
	RequirementUseCase usecase.IRequirementUseCase

	Validator *auth.JWTValidator
}

func Build(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*Container, error) {
	c := &Container{Config: cfg, Log: log}

	needsAWS := cfg.StoreBackend == config.StoreBackendDynamoDB || cfg.BlobBackend == config.BlobBackendS3
	var awsCfg aws.Config
	if needsAWS {
		var err error
		if awsCfg, err = database.LoadAWSConfig(ctx, cfg); err != nil {
			return nil, err
		}
	}

	switch cfg.StoreBackend {
	case config.StoreBackendDynamoDB:
		ddb := database.NewDynamoDBClient(awsCfg, cfg)
		c.Companies = repository.NewCompanyDynamoRepository(ddb)
		c.Calendars = repository.NewCalendarDynamoRepository(ddb)
		c.Periods = repository.NewPeriodDynamoRepository(ddb)
		c.Submissions = repository.NewSubmissionDynamoRepository(ddb)
		c.Requirements = repository.NewRequirementDynamoRepository(ddb)
	case config.StoreBackendMemory:
		seed := make([]entities.Company, 0, len(cfg.DevCompanies))
		for _, id := range cfg.DevCompanies {
			seed = append(seed, entities.Company{ID: id, Nombre: id, ComplianceModuleEnabled: true})
		}
		c.Companies = memory.NewCompanyRepository(seed...)
		c.Calendars = memory.NewCalendarRepository()
		c.Periods = memory.NewPeriodRepository()
		c.Submissions = memory.NewSubmissionRepository()
		c.Requirements = memory.NewRequirementRepository()
		log.Warn().Int("companies", len(seed)).Msg("using in-memory store, data is lost on restart")
	default:
		return nil, fmt.Errorf("unsupported store backend: %s", cfg.StoreBackend)
	}

	blobs, err := blobstore.NewFromConfig(ctx, cfg, awsCfg)
	if err != nil {
		return nil, err
	}
	c.Blobs = blobs

	c.PeriodUseCase = usecase.NewPeriodUseCase(c.Periods, c.Calendars, log)
	c.SchedulerUseCase = usecase.NewSchedulerUseCase(c.Companies, c.PeriodUseCase, log)
	c.SubmissionUseCase = usecase.NewSubmissionUseCase(
		c.Submissions,
		c.Periods,
		c.Requirements,
		c.Blobs,
		pdf.NewInspector(cfg.MaxPDFPages),
		usecase.SubmissionPolicy{MaxBytes: cfg.MaxUploadBytes, AllowedTypes: cfg.AllowedTypes},
		log,
	)
	c.StatusUseCase = usecase.NewComplianceStatusUseCase(c.Periods, c.Submissions, c.Requirements, log)
	c.CalendarUseCase = usecase.NewCalendarUseCase(c.Calendars)
	c.RequirementUseCase = usecase.NewRequirementUseCase(c.Requirements)
	c.Validator = auth.NewJWTValidator(cfg.JWTSecret, cfg.JWTIssuer)

	log.Info().
		Str("store", cfg.StoreBackend).
		Str("blob", cfg.BlobBackend).
		Msg("container ready")
	return c, nil
}
