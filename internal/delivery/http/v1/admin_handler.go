package v1

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fenrirlabsnl/airesume/internal/delivery/http/response"
	"github.com/fenrirlabsnl/airesume/internal/domain"
	"github.com/fenrirlabsnl/airesume/pkg/apperror"
	"github.com/fenrirlabsnl/airesume/pkg/audit"
)

// AdminHandler is the authenticated console for maintaining the
// candidate knowledge base.
type AdminHandler struct {
	profileUC    domain.ProfileUsecase
	experienceUC domain.ExperienceUsecase
	skillUC      domain.SkillUsecase
	contentUC    domain.ContentUsecase
	exportUC     domain.ExportUsecase
}

// NewAdminHandler registers the admin console routes
func NewAdminHandler(
	protected *gin.RouterGroup,
	profileUC domain.ProfileUsecase,
	experienceUC domain.ExperienceUsecase,
	skillUC domain.SkillUsecase,
	contentUC domain.ContentUsecase,
	exportUC domain.ExportUsecase,
) {
	handler := &AdminHandler{
		profileUC:    profileUC,
		experienceUC: experienceUC,
		skillUC:      skillUC,
		contentUC:    contentUC,
		exportUC:     exportUC,
	}

	admin := protected.Group("/admin")

	admin.PUT("/profile", handler.UpdateProfile)

	admin.GET("/experiences", handler.ListExperiences)
	admin.POST("/experiences", handler.CreateExperience)
	admin.PUT("/experiences/:id", handler.UpdateExperience)
	admin.DELETE("/experiences/:id", handler.DeleteExperience)

	admin.GET("/skills", handler.ListSkills)
	admin.POST("/skills", handler.CreateSkill)
	admin.PUT("/skills/:id", handler.UpdateSkill)
	admin.DELETE("/skills/:id", handler.DeleteSkill)

	admin.GET("/gaps", handler.ListGaps)
	admin.POST("/gaps", handler.CreateGap)
	admin.PUT("/gaps/:id", handler.UpdateGap)
	admin.DELETE("/gaps/:id", handler.DeleteGap)

	admin.GET("/faqs", handler.ListFaqs)
	admin.POST("/faqs", handler.CreateFaq)
	admin.PUT("/faqs/:id", handler.UpdateFaq)
	admin.DELETE("/faqs/:id", handler.DeleteFaq)

	admin.GET("/instructions", handler.ListInstructions)
	admin.POST("/instructions", handler.CreateInstruction)
	admin.PUT("/instructions/:id", handler.UpdateInstruction)
	admin.DELETE("/instructions/:id", handler.DeleteInstruction)

	admin.GET("/chat/:session_id/export", handler.ExportTranscript)
}

func (h *AdminHandler) auditContentChanged(c *gin.Context, entity, action, id string) {
	requestID, _ := c.Get("RequestID")
	reqIDStr, _ := requestID.(string)
	userID, _ := c.Get(string(domain.KeyUserID))
	userIDStr, _ := userID.(string)
	audit.Default().Log(audit.Event{
		Event:     audit.EventContentChanged,
		Subject:   userIDStr,
		IP:        c.ClientIP(),
		RequestID: reqIDStr,
		Details: map[string]interface{}{
			"entity": entity,
			"action": action,
			"id":     id,
		},
	})
}

// UpdateProfile godoc
// @Summary      Update Candidate Profile
// @Description  Create or replace the single candidate profile.
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        profile  body      domain.UpdateProfileRequest  true  "Profile Data"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Failure      401      {object}  response.Response
// @Router       /admin/profile [put]
func (h *AdminHandler) UpdateProfile(c *gin.Context) {
	var req domain.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	profile, err := h.profileUC.UpdateProfile(c.Request.Context(), &req)
	if err != nil {
		c.Error(err)
		return
	}

	h.auditContentChanged(c, "profile", "upsert", profile.ID)
	response.Success(c, http.StatusOK, "Profile updated", profile)
}

func (h *AdminHandler) ListExperiences(c *gin.Context) {
	experiences, err := h.experienceUC.ListExperiences(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Work experiences", experiences)
}

// CreateExperience godoc
// @Summary      Create Work Experience
// @Description  Add a work experience entry, including the private reflection fields.
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        experience  body      domain.ExperienceRequest  true  "Experience Data"
// @Success      201         {object}  response.Response
// @Failure      400         {object}  response.Response
// @Router       /admin/experiences [post]
func (h *AdminHandler) CreateExperience(c *gin.Context) {
	var req domain.ExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	exp, err := h.experienceUC.CreateExperience(c.Request.Context(), &req)
	if err != nil {
		c.Error(err)
		return
	}

	h.auditContentChanged(c, "experience", "create", exp.ID)
	response.Success(c, http.StatusCreated, "Experience created", exp)
}

func (h *AdminHandler) UpdateExperience(c *gin.Context) {
	var req domain.ExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	exp, err := h.experienceUC.UpdateExperience(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		c.Error(err)
		return
	}

	h.auditContentChanged(c, "experience", "update", exp.ID)
	response.Success(c, http.StatusOK, "Experience updated", exp)
}

func (h *AdminHandler) DeleteExperience(c *gin.Context) {
	id := c.Param("id")
	if err := h.experienceUC.DeleteExperience(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	h.auditContentChanged(c, "experience", "delete", id)
	response.Success(c, http.StatusOK, "Experience deleted", nil)
}

func (h *AdminHandler) ListSkills(c *gin.Context) {
	skills, err := h.skillUC.ListSkills(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Skills", skills)
}

func (h *AdminHandler) CreateSkill(c *gin.Context) {
	var req domain.SkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	skill, err := h.skillUC.CreateSkill(c.Request.Context(), &req)
	if err != nil {
		c.Error(err)
		return
	}

	h.auditContentChanged(c, "skill", "create", skill.ID)
	response.Success(c, http.StatusCreated, "Skill created", skill)
}

func (h *AdminHandler) UpdateSkill(c *gin.Context) {
	var req domain.SkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	skill, err := h.skillUC.UpdateSkill(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		c.Error(err)
		return
	}

	h.auditContentChanged(c, "skill", "update", skill.ID)
	response.Success(c, http.StatusOK, "Skill updated", skill)
}

func (h *AdminHandler) DeleteSkill(c *gin.Context) {
	id := c.Param("id")
	if err := h.skillUC.DeleteSkill(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	h.auditContentChanged(c, "skill", "delete", id)
	response.Success(c, http.StatusOK, "Skill deleted", nil)
}

func (h *AdminHandler) ListGaps(c *gin.Context) {
	gaps, err := h.contentUC.ListGaps(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Known gaps", gaps)
}

func (h *AdminHandler) CreateGap(c *gin.Context) {
	var req domain.GapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	gap, err := h.contentUC.CreateGap(c.Request.Context(), &req)
	if err != nil {
		c.Error(err)
		return
	}

	h.auditContentChanged(c, "gap", "create", gap.ID)
	response.Success(c, http.StatusCreated, "Gap created", gap)
}

func (h *AdminHandler) UpdateGap(c *gin.Context) {
	var req domain.GapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	gap, err := h.contentUC.UpdateGap(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		c.Error(err)
		return
	}

	h.auditContentChanged(c, "gap", "update", gap.ID)
	response.Success(c, http.StatusOK, "Gap updated", gap)
}

func (h *AdminHandler) DeleteGap(c *gin.Context) {
	id := c.Param("id")
	if err := h.contentUC.DeleteGap(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	h.auditContentChanged(c, "gap", "delete", id)
	response.Success(c, http.StatusOK, "Gap deleted", nil)
}

func (h *AdminHandler) ListFaqs(c *gin.Context) {
	faqs, err := h.contentUC.ListFaqs(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "FAQs", faqs)
}

func (h *AdminHandler) CreateFaq(c *gin.Context) {
	var req domain.FaqRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	faq, err := h.contentUC.CreateFaq(c.Request.Context(), &req)
	if err != nil {
		c.Error(err)
		return
	}

	h.auditContentChanged(c, "faq", "create", faq.ID)
	response.Success(c, http.StatusCreated, "FAQ created", faq)
}

func (h *AdminHandler) UpdateFaq(c *gin.Context) {
	var req domain.FaqRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	faq, err := h.contentUC.UpdateFaq(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		c.Error(err)
		return
	}

	h.auditContentChanged(c, "faq", "update", faq.ID)
	response.Success(c, http.StatusOK, "FAQ updated", faq)
}

func (h *AdminHandler) DeleteFaq(c *gin.Context) {
	id := c.Param("id")
	if err := h.contentUC.DeleteFaq(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	h.auditContentChanged(c, "faq", "delete", id)
	response.Success(c, http.StatusOK, "FAQ deleted", nil)
}

func (h *AdminHandler) ListInstructions(c *gin.Context) {
	instructions, err := h.contentUC.ListInstructions(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "AI instructions", instructions)
}

func (h *AdminHandler) CreateInstruction(c *gin.Context) {
	var req domain.InstructionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	instruction, err := h.contentUC.CreateInstruction(c.Request.Context(), &req)
	if err != nil {
		c.Error(err)
		return
	}

	h.auditContentChanged(c, "instruction", "create", instruction.ID)
	response.Success(c, http.StatusCreated, "Instruction created", instruction)
}

func (h *AdminHandler) UpdateInstruction(c *gin.Context) {
	var req domain.InstructionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	instruction, err := h.contentUC.UpdateInstruction(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		c.Error(err)
		return
	}

	h.auditContentChanged(c, "instruction", "update", instruction.ID)
	response.Success(c, http.StatusOK, "Instruction updated", instruction)
}

func (h *AdminHandler) DeleteInstruction(c *gin.Context) {
	id := c.Param("id")
	if err := h.contentUC.DeleteInstruction(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	h.auditContentChanged(c, "instruction", "delete", id)
	response.Success(c, http.StatusOK, "Instruction deleted", nil)
}

// ExportTranscript godoc
// @Summary      Export Chat Transcript
// @Description  Download a session transcript as xlsx or csv.
// @Tags         admin
// @Produce      application/octet-stream
// @Security     BearerAuth
// @Param        session_id  path      string  true   "Session ID"
// @Param        format      query     string  false  "Export format (xlsx or csv)"  default(xlsx)
// @Success      200         {file}    byte
// @Failure      404         {object}  response.Response
// @Router       /admin/chat/{session_id}/export [get]
func (h *AdminHandler) ExportTranscript(c *gin.Context) {
	sessionID := c.Param("session_id")
	format := c.DefaultQuery("format", domain.ExportFormatXLSX)

	data, filename, err := h.exportUC.ExportTranscript(c.Request.Context(), sessionID, format)
	if err != nil {
		c.Error(err)
		return
	}

	requestID, _ := c.Get("RequestID")
	reqIDStr, _ := requestID.(string)
	audit.Default().Log(audit.Event{
		Event:     audit.EventTranscriptExported,
		SessionID: sessionID,
		IP:        c.ClientIP(),
		RequestID: reqIDStr,
		Details:   map[string]interface{}{"format": format},
	})

	contentType := "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	if format == domain.ExportFormatCSV {
		contentType = "text/csv"
	}
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, contentType, data)
}
