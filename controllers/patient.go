package controllers

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/meinhoongagan/cabinet-api/db"
	"github.com/meinhoongagan/cabinet-api/models"
	"github.com/meinhoongagan/cabinet-api/utils"
	"gorm.io/gorm"
)

var patientNumber = regexp.MustCompile(`^[Pp]?(\d+)$`)

// parsePatientNumber extracts the numeric sequence id from a search query
// when it looks like a patient number ("123" or "P000123").
func parsePatientNumber(query string) (int64, bool) {
	m := patientNumber.FindStringSubmatch(query)
	if m == nil {
		return 0, false
	}
	id, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

var patientSortFields = map[string]string{
	"sequenceId": "sequence_id",
	"nom":        "nom",
	"prenom":     "prenom",
	"createdAt":  "created_at",
}

// GetPatients lists patients with pagination and search. Search matches
// case-insensitive substrings of nom, prenom and telephone, or the exact
// sequence id when the query parses as a patient number.
func GetPatients(c *fiber.Ctx) error {
	page, limit, offset := utils.ParsePage(c, 20)

	query := db.DB.Model(&models.Patient{})
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		like := "%" + search + "%"
		if id, ok := parsePatientNumber(search); ok {
			query = query.Where(
				"nom ILIKE ? OR prenom ILIKE ? OR telephone ILIKE ? OR sequence_id = ?",
				like, like, like, id,
			)
		} else {
			query = query.Where(
				"nom ILIKE ? OR prenom ILIKE ? OR telephone ILIKE ?",
				like, like, like,
			)
		}
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return utils.Fail(c, utils.ErrInternal, "Failed to count patients")
	}

	sortBy, ok := patientSortFields[c.Query("sortBy", "sequenceId")]
	if !ok {
		sortBy = "sequence_id"
	}

	var patients []models.Patient
	if err := query.Preload("Soins").Order(sortBy + " asc").Offset(offset).Limit(limit).Find(&patients).Error; err != nil {
		return utils.Fail(c, utils.ErrInternal, "Failed to fetch patients")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"patients":   patients,
			"pagination": utils.NewPagination(page, limit, total),
		},
	})
}

// GetPatient returns one patient with the full soins history.
func GetPatient(c *fiber.Ctx) error {
	var patient models.Patient
	if err := db.DB.Preload("Soins").First(&patient, c.Params("id")).Error; err != nil {
		return utils.Fail(c, utils.ErrNotFound, "Patient not found")
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    patient,
	})
}

// CreatePatient creates a patient with a fresh sequence number. The counter
// increment and the insert run in one transaction: a patient is never
// persisted without its id, and a claimed number is never reused even when
// the insert fails.
func CreatePatient(c *fiber.Ctx) error {
	type CreatePatientInput struct {
		Nom            string     `json:"nom"`
		Prenom         string     `json:"prenom"`
		DateNaissance  *time.Time `json:"dateNaissance"`
		Telephone      string     `json:"telephone"`
		Email          string     `json:"email"`
		Adresse        string     `json:"adresse"`
		Mutuelle       string     `json:"mutuelle"`
		NumeroMutuelle string     `json:"numeroMutuelle"`
		Antecedents    string     `json:"antecedents"`
	}

	input := new(CreatePatientInput)
	if err := c.BodyParser(input); err != nil {
		return utils.Fail(c, utils.ErrValidation, "Cannot parse JSON")
	}

	input.Nom = strings.TrimSpace(input.Nom)
	input.Prenom = strings.TrimSpace(input.Prenom)
	input.Telephone = strings.TrimSpace(input.Telephone)
	if input.Nom == "" || input.Prenom == "" || input.Telephone == "" || input.DateNaissance == nil {
		return utils.Fail(c, utils.ErrValidation, "Missing required fields: nom, prenom, dateNaissance, telephone")
	}

	patient := models.Patient{
		Nom:            input.Nom,
		Prenom:         input.Prenom,
		DateNaissance:  *input.DateNaissance,
		Telephone:      input.Telephone,
		Email:          strings.TrimSpace(input.Email),
		Adresse:        strings.TrimSpace(input.Adresse),
		Mutuelle:       strings.TrimSpace(input.Mutuelle),
		NumeroMutuelle: strings.TrimSpace(input.NumeroMutuelle),
		Antecedents:    strings.TrimSpace(input.Antecedents),
		Soins:          []models.Soin{},
	}

	err := db.DB.Transaction(func(tx *gorm.DB) error {
		seq, err := models.NextSequence(tx, "patientId")
		if err != nil {
			return err
		}
		patient.SequenceID = seq
		return tx.Create(&patient).Error
	})
	if err != nil {
		return utils.Fail(c, utils.ErrInternal, "Failed to create patient")
	}

	patient.Refresh()
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Patient created with number " + patient.NumeroPatient,
		"data":    patient,
	})
}

// UpdatePatient edits demographic fields. Soins have their own endpoints;
// the sequence id is immutable.
func UpdatePatient(c *fiber.Ctx) error {
	type UpdatePatientInput struct {
		Nom            *string    `json:"nom"`
		Prenom         *string    `json:"prenom"`
		DateNaissance  *time.Time `json:"dateNaissance"`
		Telephone      *string    `json:"telephone"`
		Email          *string    `json:"email"`
		Adresse        *string    `json:"adresse"`
		Mutuelle       *string    `json:"mutuelle"`
		NumeroMutuelle *string    `json:"numeroMutuelle"`
		Antecedents    *string    `json:"antecedents"`
	}

	input := new(UpdatePatientInput)
	if err := c.BodyParser(input); err != nil {
		return utils.Fail(c, utils.ErrValidation, "Cannot parse JSON")
	}

	var patient models.Patient
	if err := db.DB.Preload("Soins").First(&patient, c.Params("id")).Error; err != nil {
		return utils.Fail(c, utils.ErrNotFound, "Patient not found")
	}

	if input.Nom != nil {
		if strings.TrimSpace(*input.Nom) == "" {
			return utils.Fail(c, utils.ErrValidation, "Nom cannot be empty")
		}
		patient.Nom = strings.TrimSpace(*input.Nom)
	}
	if input.Prenom != nil {
		if strings.TrimSpace(*input.Prenom) == "" {
			return utils.Fail(c, utils.ErrValidation, "Prenom cannot be empty")
		}
		patient.Prenom = strings.TrimSpace(*input.Prenom)
	}
	if input.Telephone != nil {
		if strings.TrimSpace(*input.Telephone) == "" {
			return utils.Fail(c, utils.ErrValidation, "Telephone cannot be empty")
		}
		patient.Telephone = strings.TrimSpace(*input.Telephone)
	}
	if input.DateNaissance != nil {
		patient.DateNaissance = *input.DateNaissance
	}
	if input.Email != nil {
		patient.Email = strings.TrimSpace(*input.Email)
	}
	if input.Adresse != nil {
		patient.Adresse = strings.TrimSpace(*input.Adresse)
	}
	if input.Mutuelle != nil {
		patient.Mutuelle = strings.TrimSpace(*input.Mutuelle)
	}
	if input.NumeroMutuelle != nil {
		patient.NumeroMutuelle = strings.TrimSpace(*input.NumeroMutuelle)
	}
	if input.Antecedents != nil {
		patient.Antecedents = strings.TrimSpace(*input.Antecedents)
	}

	if err := db.DB.Save(&patient).Error; err != nil {
		return utils.Fail(c, utils.ErrInternal, "Failed to update patient")
	}

	patient.Refresh()
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Patient updated",
		"data":    patient,
	})
}

// DeletePatient hard-deletes a patient and their soins. The sequence number
// stays burned: the counter never goes backwards.
func DeletePatient(c *fiber.Ctx) error {
	var patient models.Patient
	if err := db.DB.First(&patient, c.Params("id")).Error; err != nil {
		return utils.Fail(c, utils.ErrNotFound, "Patient not found")
	}

	err := db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("patient_id = ?", patient.ID).Delete(&models.Soin{}).Error; err != nil {
			return err
		}
		return tx.Delete(&patient).Error
	})
	if err != nil {
		return utils.Fail(c, utils.ErrInternal, "Failed to delete patient")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Patient deleted",
	})
}

// AddSoin appends a care record to the patient's history. Honoraire is
// required and non-negative; recu defaults to 0.
func AddSoin(c *fiber.Ctx) error {
	type AddSoinInput struct {
		Date        *time.Time `json:"date"`
		Dent        string     `json:"dent"`
		Description string     `json:"description"`
		Honoraire   *float64   `json:"honoraire"`
		Recu        float64    `json:"recu"`
	}

	input := new(AddSoinInput)
	if err := c.BodyParser(input); err != nil {
		return utils.Fail(c, utils.ErrValidation, "Cannot parse JSON")
	}

	if strings.TrimSpace(input.Description) == "" {
		return utils.Fail(c, utils.ErrValidation, "Description is required")
	}
	if input.Honoraire == nil || *input.Honoraire < 0 {
		return utils.Fail(c, utils.ErrValidation, "Honoraire is required and must be positive")
	}
	if input.Recu < 0 {
		return utils.Fail(c, utils.ErrValidation, "Recu must be positive")
	}

	var patient models.Patient
	if err := db.DB.First(&patient, c.Params("id")).Error; err != nil {
		return utils.Fail(c, utils.ErrNotFound, "Patient not found")
	}

	date := time.Now()
	if input.Date != nil {
		date = *input.Date
	}

	soin := models.Soin{
		PatientID:   patient.ID,
		Date:        date,
		Dent:        strings.TrimSpace(input.Dent),
		Description: strings.TrimSpace(input.Description),
		Honoraire:   *input.Honoraire,
		Recu:        input.Recu,
	}
	if err := db.DB.Create(&soin).Error; err != nil {
		return utils.Fail(c, utils.ErrInternal, "Failed to add soin")
	}

	if err := db.DB.Preload("Soins").First(&patient, patient.ID).Error; err != nil {
		return utils.Fail(c, utils.ErrInternal, "Failed to reload patient")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Soin added",
		"data":    patient,
	})
}

// UpdateSoin edits one care record of a patient.
func UpdateSoin(c *fiber.Ctx) error {
	type UpdateSoinInput struct {
		Date        *time.Time `json:"date"`
		Dent        *string    `json:"dent"`
		Description *string    `json:"description"`
		Honoraire   *float64   `json:"honoraire"`
		Recu        *float64   `json:"recu"`
	}

	input := new(UpdateSoinInput)
	if err := c.BodyParser(input); err != nil {
		return utils.Fail(c, utils.ErrValidation, "Cannot parse JSON")
	}

	var patient models.Patient
	if err := db.DB.First(&patient, c.Params("id")).Error; err != nil {
		return utils.Fail(c, utils.ErrNotFound, "Patient not found")
	}

	var soin models.Soin
	if err := db.DB.Where("id = ? AND patient_id = ?", c.Params("soinId"), patient.ID).First(&soin).Error; err != nil {
		return utils.Fail(c, utils.ErrNotFound, "Soin not found")
	}

	if input.Date != nil {
		soin.Date = *input.Date
	}
	if input.Dent != nil {
		soin.Dent = strings.TrimSpace(*input.Dent)
	}
	if input.Description != nil {
		if strings.TrimSpace(*input.Description) == "" {
			return utils.Fail(c, utils.ErrValidation, "Description cannot be empty")
		}
		soin.Description = strings.TrimSpace(*input.Description)
	}
	if input.Honoraire != nil {
		if *input.Honoraire < 0 {
			return utils.Fail(c, utils.ErrValidation, "Honoraire must be positive")
		}
		soin.Honoraire = *input.Honoraire
	}
	if input.Recu != nil {
		if *input.Recu < 0 {
			return utils.Fail(c, utils.ErrValidation, "Recu must be positive")
		}
		soin.Recu = *input.Recu
	}

	if err := db.DB.Save(&soin).Error; err != nil {
		return utils.Fail(c, utils.ErrInternal, "Failed to update soin")
	}

	if err := db.DB.Preload("Soins").First(&patient, patient.ID).Error; err != nil {
		return utils.Fail(c, utils.ErrInternal, "Failed to reload patient")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Soin updated",
		"data":    patient,
	})
}

// DeleteSoin removes one care record of a patient.
func DeleteSoin(c *fiber.Ctx) error {
	var patient models.Patient
	if err := db.DB.First(&patient, c.Params("id")).Error; err != nil {
		return utils.Fail(c, utils.ErrNotFound, "Patient not found")
	}

	result := db.DB.Where("id = ? AND patient_id = ?", c.Params("soinId"), patient.ID).Delete(&models.Soin{})
	if result.Error != nil {
		return utils.Fail(c, utils.ErrInternal, "Failed to delete soin")
	}
	if result.RowsAffected == 0 {
		return utils.Fail(c, utils.ErrNotFound, "Soin not found")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Soin deleted",
	})
}
