// handlers.go - HTTP-Handler fuer Schedules, Tier-Aufloesung, Validierung und Presets
//
// Dieses Modul enthaelt:
// - LayerScheduleHandler / TimestepScheduleHandler / TierResolveHandler
// - ValidateHandler / PresetsHandler / PresetHandler
// - PlanHandler: kombinierter Plan mit parallelem Fan-Out
// - Request→Parameter Umsetzung inklusive Defaults
package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/archai3d/grag/api"
	"github.com/archai3d/grag/errtypes"
	"github.com/archai3d/grag/reweight"
	"github.com/archai3d/grag/schedule"
)

// abortWithError mappt Fehler auf HTTP-Status: Vertragsverletzungen des
// Aufrufers werden 400, alles andere 500.
func abortWithError(c *gin.Context, err error) {
	var invalidArg *errtypes.InvalidArgumentError
	var shapeMismatch *errtypes.ShapeMismatchError
	if errors.As(err, &invalidArg) || errors.As(err, &shapeMismatch) {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

func valueOr(p *float64, fallback float64) float64 {
	if p != nil {
		return *p
	}
	return fallback
}

// layerParamsFromRequest setzt einen Request in LayerParams um. Ein Preset
// liefert die Grundwerte; explizite Felder ueberschreiben sie.
func layerParamsFromRequest(req *api.LayerScheduleRequest) (schedule.LayerParams, error) {
	if req.TotalLayers < 1 {
		return schedule.LayerParams{}, &errtypes.InvalidArgumentError{
			Argument: "total_layers", Reason: "must be at least 1",
		}
	}

	var params schedule.LayerParams
	if req.Preset != "" {
		params = schedule.LayerPresetByName(req.Preset).Params(req.TotalLayers)
	} else {
		params = schedule.LayerParams{
			TotalLayers: req.TotalLayers,
			Strategy:    schedule.CurveLinear,
			LambdaStart: 0.9, LambdaEnd: 1.3,
			DeltaStart: 0.9, DeltaEnd: 1.3,
		}
	}

	if req.Strategy != "" {
		strategy, err := schedule.ParseCurve(req.Strategy)
		if err != nil {
			return schedule.LayerParams{}, err
		}
		params.Strategy = strategy
	}

	params.LambdaStart = valueOr(req.LambdaStart, params.LambdaStart)
	params.LambdaEnd = valueOr(req.LambdaEnd, params.LambdaEnd)
	params.DeltaStart = valueOr(req.DeltaStart, params.DeltaStart)
	params.DeltaEnd = valueOr(req.DeltaEnd, params.DeltaEnd)
	params.CustomLambda = req.CustomLambda
	params.CustomDelta = req.CustomDelta

	return params, nil
}

// adaptiveParamsFromRequest setzt einen Request in AdaptiveParams um.
func adaptiveParamsFromRequest(req *api.TimestepScheduleRequest) (schedule.AdaptiveParams, error) {
	if req.TotalSteps < 1 {
		return schedule.AdaptiveParams{}, &errtypes.InvalidArgumentError{
			Argument: "total_steps", Reason: "must be at least 1",
		}
	}

	var params schedule.AdaptiveParams
	if req.Preset != "" {
		params = schedule.AdaptivePresetByName(req.Preset).Params(req.TotalSteps)
	} else {
		params = schedule.DefaultAdaptiveParams(req.TotalSteps, schedule.CurveLinear)
	}

	if req.ScheduleType != "" {
		scheduleType, err := schedule.ParseCurve(req.ScheduleType)
		if err != nil {
			return schedule.AdaptiveParams{}, err
		}
		params.ScheduleType = scheduleType
	}

	params.LambdaBase = valueOr(req.LambdaBase, params.LambdaBase)
	params.DeltaBase = valueOr(req.DeltaBase, params.DeltaBase)
	params.MultiplierStart = valueOr(req.MultiplierStart, params.MultiplierStart)
	params.MultiplierEnd = valueOr(req.MultiplierEnd, params.MultiplierEnd)
	params.CustomMultipliers = req.CustomMultipliers

	return params, nil
}

// tierTableFromRequest baut die Tier-Tabelle aus Preset oder Inline-Feldern.
func tierTableFromRequest(req *api.TierResolveRequest) schedule.TierTable {
	numSteps := req.NumSteps
	if numSteps == 0 {
		numSteps = 60
	}

	var table schedule.TierTable
	if req.Preset != "" {
		table = schedule.TierPresetByName(req.Preset).Table(numSteps)
	} else {
		tier1Res, tier2Res := req.Tier1Resolution, req.Tier2Resolution
		if tier1Res == 0 {
			tier1Res = 512
		}
		if tier2Res == 0 {
			tier2Res = 4096
		}
		tier1Lambda, tier1Delta := req.Tier1Lambda, req.Tier1Delta
		if tier1Lambda == 0 {
			tier1Lambda = 1.0
		}
		if tier1Delta == 0 {
			tier1Delta = 1.0
		}
		tier2Lambda, tier2Delta := req.Tier2Lambda, req.Tier2Delta
		if tier2Lambda == 0 {
			tier2Lambda = 1.0
		}
		if tier2Delta == 0 {
			tier2Delta = 1.05
		}
		table = schedule.NewTierTable(tier1Res, tier1Lambda, tier1Delta, tier2Res, tier2Lambda, tier2Delta, numSteps)
	}

	if req.Enabled != nil {
		table.Enabled = *req.Enabled
	}

	return table
}

// LayerScheduleHandler liefert per-Layer λ/δ Sequenzen
func (s *Server) LayerScheduleHandler(c *gin.Context) {
	var req api.LayerScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	params, err := layerParamsFromRequest(&req)
	if err != nil {
		abortWithError(c, err)
		return
	}

	lambdas, deltas, err := schedule.ComputeLayerParams(params)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, api.LayerScheduleResponse{Lambdas: lambdas, Deltas: deltas})
}

// TimestepScheduleHandler liefert den per-Timestep Schedule
func (s *Server) TimestepScheduleHandler(c *gin.Context) {
	var req api.TimestepScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	params, err := adaptiveParamsFromRequest(&req)
	if err != nil {
		abortWithError(c, err)
		return
	}

	pairs, err := schedule.AdaptiveSchedule(params)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, api.TimestepScheduleResponse{Schedule: pairs})
}

// TierResolveHandler loest eine Aufloesung gegen die Tier-Tabelle auf
func (s *Server) TierResolveHandler(c *gin.Context) {
	var req api.TierResolveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pair := tierTableFromRequest(&req).Resolve(req.Resolution)
	c.JSON(http.StatusOK, api.TierResolveResponse{Lambda: pair.Lambda, Delta: pair.Delta})
}

// ValidateHandler prueft ein (λ, δ) Paar
func (s *Server) ValidateHandler(c *gin.Context) {
	var req api.ValidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	advisories, err := reweight.Validate(req.Lambda, req.Delta)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, api.ValidateResponse{Valid: true, Advisories: advisories})
}

// PresetsHandler listet den Preset-Katalog
func (s *Server) PresetsHandler(c *gin.Context) {
	var resp api.PresetsResponse
	for _, key := range s.catalog.Keys() {
		resp.Presets = append(resp.Presets, api.PresetEntry{Key: key, Preset: s.catalog.Get(key)})
	}
	c.JSON(http.StatusOK, resp)
}

// PresetHandler liefert ein einzelnes Preset; unbekannte Keys fallen auf das
// neutrale "custom" Preset zurueck statt zu scheitern
func (s *Server) PresetHandler(c *gin.Context) {
	key := c.Param("key")
	c.JSON(http.StatusOK, api.PresetEntry{Key: key, Preset: s.catalog.Get(key)})
}

// PlanHandler berechnet Layer-, Timestep- und Tier-Schedule parallel
func (s *Server) PlanHandler(c *gin.Context) {
	var req api.PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var resp api.PlanResponse
	g, _ := errgroup.WithContext(c.Request.Context())

	g.Go(func() error {
		params, err := layerParamsFromRequest(&req.Layers)
		if err != nil {
			return err
		}
		lambdas, deltas, err := schedule.ComputeLayerParams(params)
		if err != nil {
			return err
		}
		resp.Layers = api.LayerScheduleResponse{Lambdas: lambdas, Deltas: deltas}
		return nil
	})

	g.Go(func() error {
		params, err := adaptiveParamsFromRequest(&req.Timesteps)
		if err != nil {
			return err
		}
		pairs, err := schedule.AdaptiveSchedule(params)
		if err != nil {
			return err
		}
		resp.Timesteps = pairs
		return nil
	})

	g.Go(func() error {
		pair := tierTableFromRequest(&req.Tiers).Resolve(req.Tiers.Resolution)
		resp.Tier = api.TierResolveResponse{Lambda: pair.Lambda, Delta: pair.Delta}
		return nil
	})

	if err := g.Wait(); err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
