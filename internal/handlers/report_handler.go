package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/norteboa/barberpos/internal/httperr"
	"github.com/norteboa/barberpos/internal/httpresp"
	"github.com/norteboa/barberpos/internal/usecase/report"
)

type ReportHandler struct {
	summary *report.BuildSummary
}

func NewReportHandler(summary *report.BuildSummary) *ReportHandler {
	return &ReportHandler{summary: summary}
}

func (h *ReportHandler) Summary(c *gin.Context) {
	period := c.DefaultQuery("period", report.PeriodToday)

	out, err := h.summary.Execute(c.Request.Context(), period)
	if err != nil {
		if code, ok := httperr.BusinessCode(err); ok {
			httperr.BadRequest(c, code, err.Error())
			return
		}
		httperr.Internal(c, "failed_to_build_report", "Erro ao gerar relatório.")
		return
	}

	httpresp.OK(c, out)
}
