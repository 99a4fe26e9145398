package controller

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"scholax_backend/internals/configs"
	"scholax_backend/internals/features/school/students/dto"
	studentModel "scholax_backend/internals/features/school/students/model"
	"scholax_backend/internals/features/school/students/service"
	helper "scholax_backend/internals/helpers"
)

type StudentController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewStudentController(db *gorm.DB) *StudentController {
	return &StudentController{
		DB:       db,
		Validate: validator.New(),
	}
}

/* =============================
   POST /api/admin/students/add
============================= */

func (ctrl *StudentController) AddStudent(c *fiber.Ctx) error {
	var req dto.AddStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	if err := service.ValidateSection(req.Section, configs.SectionMaxLen); err != nil {
		return helper.FromFiberError(c, err)
	}

	st, err := service.AddStudent(ctrl.DB, req, configs.StudentEmailDomain)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonCreated(c, "Student added successfully", dto.FromModel(st))
}

/* =============================
   POST /api/admin/students/import
   multipart: file + batch + section
============================= */

func (ctrl *StudentController) ImportStudents(c *fiber.Ctx) error {
	batch := strings.TrimSpace(c.FormValue("batch"))
	section := strings.ToUpper(strings.TrimSpace(c.FormValue("section")))
	if batch == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Batch is required")
	}
	if err := service.ValidateSection(section, configs.SectionMaxLen); err != nil {
		return helper.FromFiberError(c, err)
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "File is required")
	}
	f, err := fileHeader.Open()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Failed to read uploaded file")
	}
	defer f.Close()

	rows, err := service.ParseRoster(fileHeader.Filename, f)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if len(rows) > configs.ImportMaxRows {
		return helper.JsonError(c, fiber.StatusBadRequest,
			fmt.Sprintf("File has %d rows, maximum allowed is %d", len(rows), configs.ImportMaxRows))
	}

	results, err := service.Import(ctrl.DB, rows, batch, section, configs.StudentEmailDomain)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c,
		fmt.Sprintf("Import finished: %d added, %d failed", results.Success, results.Failed),
		results)
}

/* =============================
   GET /api/admin/students
   filters: batch, section, branch, search
============================= */

func (ctrl *StudentController) ListStudents(c *fiber.Ctx) error {
	q := ctrl.DB.Model(&studentModel.StudentModel{})

	if batch := strings.TrimSpace(c.Query("batch")); batch != "" {
		q = q.Where("student_batch = ?", batch)
	}
	if section := strings.TrimSpace(c.Query("section")); section != "" {
		q = q.Where("student_section = ?", strings.ToUpper(section))
	}
	if branch := strings.TrimSpace(c.Query("branch")); branch != "" {
		q = q.Where("student_branch = ?", strings.ToUpper(branch))
	}
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		q = q.Where("LOWER(student_name) LIKE ? OR LOWER(student_registration_no) LIKE ?", like, like)
	}

	var students []studentModel.StudentModel
	if err := q.Order("student_registration_no ASC").Find(&students).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch students")
	}

	out := make([]dto.StudentResponse, 0, len(students))
	for i := range students {
		out = append(out, dto.FromModel(&students[i]))
	}
	return helper.JsonList(c, "Students fetched successfully", out, int64(len(out)))
}
