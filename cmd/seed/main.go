// cmd/seed/main.go — Carga los datos iniciales del sistema.
// Uso: go run ./cmd/seed
package main

import (
	"fmt"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/mausoftSistemas/sistema-crt/internal/config"
	"github.com/mausoftSistemas/sistema-crt/internal/infra"
	"github.com/mausoftSistemas/sistema-crt/internal/model"
)

func strPtr(s string) *string { return &s }

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	db, err := infra.NewDatabase(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db connect error: %v", err)
	}

	if err := seed(db); err != nil {
		log.Fatalf("seed error: %v", err)
	}
	fmt.Println("✅ Datos iniciales cargados")
}

func seed(db *gorm.DB) error {
	categorias := []model.Categoria{
		{Nombre: "Seguridad", Descripcion: strPtr("Documentación de seguridad e higiene laboral"), Color: strPtr("#EF4444")},
		{Nombre: "Higiene", Descripcion: strPtr("Controles de higiene"), Color: strPtr("#10B981")},
		{Nombre: "Capacitación", Descripcion: strPtr("Constancias de capacitación del personal"), Color: strPtr("#3B82F6")},
		{Nombre: "Legal", Descripcion: strPtr("Documentación legal y habilitaciones"), Color: strPtr("#F59E0B")},
		{Nombre: "Médico", Descripcion: strPtr("Aptos médicos y estudios"), Color: strPtr("#8B5CF6")},
	}
	if err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "nombre"}},
		DoUpdates: clause.AssignmentColumns([]string{"descripcion", "color"}),
	}).Create(&categorias).Error; err != nil {
		return fmt.Errorf("categorías: %w", err)
	}

	tipos := []model.TipoDocumento{
		{Nombre: "Certificado", Descripcion: strPtr("Certificados y constancias")},
		{Nombre: "Informe", Descripcion: strPtr("Informes técnicos")},
		{Nombre: "Habilitación", Descripcion: strPtr("Habilitaciones municipales y provinciales")},
		{Nombre: "Plan de evacuación", Descripcion: strPtr("Planes de evacuación vigentes")},
	}
	if err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "nombre"}},
		DoUpdates: clause.AssignmentColumns([]string{"descripcion"}),
	}).Create(&tipos).Error; err != nil {
		return fmt.Errorf("tipos de documento: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), 12)
	if err != nil {
		return err
	}
	admin := model.Usuario{
		Email:    "admin@crt.com",
		Password: string(hash),
		Nombre:   "Administrador",
		Rol:      model.RolAdmin,
	}
	if err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoUpdates: clause.AssignmentColumns([]string{"password", "nombre", "rol"}),
	}).Create(&admin).Error; err != nil {
		return fmt.Errorf("usuario admin: %w", err)
	}

	empresa := model.Empresa{
		Nombre:       "Empresa Demo SA",
		CUIT:         "20123456789",
		Direccion:    strPtr("Av. Siempre Viva 742"),
		Email:        strPtr("contacto@empresademo.com"),
		EsRecurrente: true,
	}
	if err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "cuit"}},
		DoUpdates: clause.AssignmentColumns([]string{"nombre", "direccion", "email", "es_recurrente"}),
	}).Create(&empresa).Error; err != nil {
		return fmt.Errorf("empresa demo: %w", err)
	}

	var existentes int64
	if err := db.Model(&model.Establecimiento{}).Where("empresa_id = ?", empresa.ID).Count(&existentes).Error; err != nil {
		return err
	}
	if existentes == 0 {
		est := model.Establecimiento{
			Nombre:    "Planta Central",
			Codigo:    strPtr("PC-001"),
			Direccion: strPtr("Parque Industrial Lote 12"),
			EmpresaID: empresa.ID,
		}
		if err := db.Create(&est).Error; err != nil {
			return fmt.Errorf("establecimiento demo: %w", err)
		}
	}
	return nil
}
