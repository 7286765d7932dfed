package controller

import (
	"encoding/base64"
	"net/http"

	"echoprep/internal/dto"
	"echoprep/internal/service"

	"github.com/gin-gonic/gin"
)

type SpeechController struct {
	speechService service.SpeechService
}

func NewSpeechController(speechService service.SpeechService) *SpeechController {
	return &SpeechController{speechService: speechService}
}

// Synthesize godoc
// @Summary Convert question text to audio
// @Description Returns empty audio with a message when the speech provider is unavailable; never fails the interview flow.
// @Tags Speech
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param text body dto.SynthesizeRequest true "Text to speak"
// @Success 200 {object} dto.SynthesizeResponse
// @Router /speech/synthesize [post]
func (c *SpeechController) Synthesize(ctx *gin.Context) {
	var req dto.SynthesizeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	audio, err := c.speechService.Synthesize(ctx.Request.Context(), req.Text)
	if err != nil {
		ctx.JSON(http.StatusOK, dto.SynthesizeResponse{Message: "Text-to-speech is currently unavailable."})
		return
	}
	ctx.JSON(http.StatusOK, dto.SynthesizeResponse{Audio: base64.StdEncoding.EncodeToString(audio)})
}

// Transcribe godoc
// @Summary Convert a spoken answer to text
// @Description Returns a "could not process" placeholder transcript when the provider is unavailable.
// @Tags Speech
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param audio body dto.TranscribeRequest true "Base64-encoded audio"
// @Success 200 {object} dto.TranscribeResponse
// @Router /speech/transcribe [post]
func (c *SpeechController) Transcribe(ctx *gin.Context) {
	var req dto.TranscribeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	audio, err := base64.StdEncoding.DecodeString(req.Audio)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Audio payload is not valid base64"})
		return
	}

	// Degraded transcription still answers 200 with the placeholder text.
	text, _ := c.speechService.Transcribe(ctx.Request.Context(), audio)
	ctx.JSON(http.StatusOK, dto.TranscribeResponse{Text: text})
}
