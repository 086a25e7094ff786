package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fenrirlabsnl/airesume/internal/delivery/http/response"
	"github.com/fenrirlabsnl/airesume/internal/domain"
)

// PublicHandler serves the read-only content for the portfolio site
type PublicHandler struct {
	profileUC    domain.ProfileUsecase
	experienceUC domain.ExperienceUsecase
	skillUC      domain.SkillUsecase
	contentUC    domain.ContentUsecase
}

// NewPublicHandler registers the public read routes (no auth required)
func NewPublicHandler(
	public *gin.RouterGroup,
	profileUC domain.ProfileUsecase,
	experienceUC domain.ExperienceUsecase,
	skillUC domain.SkillUsecase,
	contentUC domain.ContentUsecase,
) {
	handler := &PublicHandler{
		profileUC:    profileUC,
		experienceUC: experienceUC,
		skillUC:      skillUC,
		contentUC:    contentUC,
	}

	public.GET("/profile", handler.GetProfile)
	public.GET("/experiences", handler.ListExperiences)
	public.GET("/skills", handler.ListSkills)
	public.GET("/faqs", handler.ListCommonFaqs)
	public.GET("/gaps", handler.ListGaps)
}

// GetProfile godoc
// @Summary      Get Candidate Profile
// @Description  Return the candidate profile shown on the portfolio site.
// @Tags         public
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /profile [get]
func (h *PublicHandler) GetProfile(c *gin.Context) {
	profile, err := h.profileUC.GetProfile(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Candidate profile", profile)
}

// ListExperiences godoc
// @Summary      List Work Experiences
// @Description  Return work experiences with the private reflection fields stripped, current roles first.
// @Tags         public
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /experiences [get]
func (h *PublicHandler) ListExperiences(c *gin.Context) {
	experiences, err := h.experienceUC.ListPublicExperiences(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Work experiences", experiences)
}

// ListSkills godoc
// @Summary      List Skills By Tier
// @Description  Return skills grouped into strong / moderate / growth tiers by self-rating.
// @Tags         public
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /skills [get]
func (h *PublicHandler) ListSkills(c *gin.Context) {
	grouped, err := h.skillUC.ListSkillsByTier(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Skills by strength tier", grouped)
}

// ListCommonFaqs godoc
// @Summary      List Common FAQs
// @Description  Return the FAQ entries marked as common questions.
// @Tags         public
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /faqs [get]
func (h *PublicHandler) ListCommonFaqs(c *gin.Context) {
	faqs, err := h.contentUC.ListCommonFaqs(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Common questions", faqs)
}

// ListGaps godoc
// @Summary      List Known Gaps
// @Description  Return the gaps and weaknesses the candidate is upfront about.
// @Tags         public
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /gaps [get]
func (h *PublicHandler) ListGaps(c *gin.Context) {
	gaps, err := h.contentUC.ListGaps(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Known gaps", gaps)
}
