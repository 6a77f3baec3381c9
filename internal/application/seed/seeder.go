// Package seed garantiza los datos base al arranque: cuenta de administrador,
// singleton de configuración y lista de sectores por defecto. Cada chequeo es
// idempotente e independiente de los otros dos.
package seed

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rzahabc/employee-management-app/internal/domain/entity"
	"github.com/rzahabc/employee-management-app/internal/domain/repository"
	"github.com/rzahabc/employee-management-app/pkg/hash"
	"github.com/rzahabc/employee-management-app/pkg/logger"
)

// DefaultSectors nombres de los sectores sembrados en una base vacía, en orden.
var DefaultSectors = []string{
	"القطاع الأول",
	"القطاع الثاني",
	"القطاع الثالث",
}

// Config credenciales del administrador inicial.
type Config struct {
	AdminUsername string
	AdminPassword string
}

// Seeder ejecuta los chequeos de datos base antes de aceptar tráfico.
type Seeder struct {
	users    repository.UserRepository
	sectors  repository.SectorRepository
	settings repository.SettingsRepository
	cfg      Config
	log      *logger.Logger
}

// New construye el seeder con los puertos de persistencia.
func New(users repository.UserRepository, sectors repository.SectorRepository,
	settings repository.SettingsRepository, cfg Config, log *logger.Logger) *Seeder {
	return &Seeder{users: users, sectors: sectors, settings: settings, cfg: cfg, log: log}
}

// Run ejecuta los tres chequeos. Repetir el arranque con los datos ya
// sembrados es un no-op por chequeo. El chequeo es leer-luego-insertar sin
// bloqueo: dos arranques simultáneos sobre una base vacía podrían duplicar
// un dato base; limitación conocida y aceptada.
func (s *Seeder) Run() error {
	if err := s.ensureAdmin(); err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	if err := s.ensureSettings(); err != nil {
		return fmt.Errorf("seed settings: %w", err)
	}
	if err := s.ensureSectors(); err != nil {
		return fmt.Errorf("seed sectors: %w", err)
	}
	return nil
}

func (s *Seeder) ensureAdmin() error {
	existing, err := s.users.GetByUsername(s.cfg.AdminUsername)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}
	admin := &entity.User{
		ID:        uuid.New().String(),
		Username:  s.cfg.AdminUsername,
		Password:  hash.SHA256Hex(s.cfg.AdminPassword),
		Role:      entity.RoleAdmin,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.users.Create(admin); err != nil {
		return err
	}
	s.log.Info().Str("username", admin.Username).Msg("usuario administrador por defecto creado")
	return nil
}

func (s *Seeder) ensureSettings() error {
	existing, err := s.settings.Get()
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}
	if err := s.settings.Insert(entity.DefaultSettings()); err != nil {
		return err
	}
	s.log.Info().Msg("configuración por defecto creada")
	return nil
}

func (s *Seeder) ensureSectors() error {
	count, err := s.sectors.Count()
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	for _, name := range DefaultSectors {
		sector := &entity.Sector{
			ID:        uuid.New().String(),
			Name:      name,
			CreatedAt: time.Now().UTC(),
		}
		if err := s.sectors.Create(sector); err != nil {
			return err
		}
	}
	s.log.Info().Int("count", len(DefaultSectors)).Msg("sectores por defecto creados")
	return nil
}
