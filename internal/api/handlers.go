package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/corezen-health/screening-server/internal/domain"
	"github.com/corezen-health/screening-server/internal/registry"
	"github.com/corezen-health/screening-server/internal/service"
)

// handleHealth handles health check requests
func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now(),
		"version":   "1.0.0",
	})
}

// handleCreateClient issues a new client identifier and stores an empty
// snapshot for it.
func (s *Server) handleCreateClient(c *gin.Context) {
	clientID, err := s.store.NextClientID(c.Request.Context())
	if err != nil {
		s.logger.WithError(err).Error("Failed to issue client ID")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to issue client ID"})
		return
	}

	snap := &registry.Snapshot{
		ClientID: clientID,
		Record:   &domain.AssessmentRecord{ClientID: clientID},
	}
	if err := s.store.SaveSnapshot(c.Request.Context(), snap); err != nil {
		s.logger.WithError(err).Error("Failed to store client snapshot")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store client"})
		return
	}

	s.logger.WithField("client_id", clientID).Info("Client registered")
	c.JSON(http.StatusCreated, gin.H{"client_id": clientID})
}

// handleSaveAssessment stores the full assessment record for a client. A
// record without a client id gets one issued here.
func (s *Server) handleSaveAssessment(c *gin.Context) {
	var record domain.AssessmentRecord
	if err := c.ShouldBindJSON(&record); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid request body: %v", err)})
		return
	}
	if record.ClientID == "" {
		clientID, err := s.store.NextClientID(c.Request.Context())
		if err != nil {
			s.logger.WithError(err).Error("Failed to issue client ID")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to issue client ID"})
			return
		}
		record.ClientID = clientID
	}

	snap := &registry.Snapshot{ClientID: record.ClientID, Record: &record}
	if err := s.store.SaveSnapshot(c.Request.Context(), snap); err != nil {
		s.logger.WithError(err).WithField("client_id", record.ClientID).Error("Failed to save assessment")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save assessment"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"client_id":  snap.ClientID,
		"updated_at": snap.UpdatedAt,
	})
}

// handleGetAssessment returns the stored assessment record for a client.
func (s *Server) handleGetAssessment(c *gin.Context) {
	clientID := c.Param("client_id")

	snap, err := s.store.GetSnapshot(c.Request.Context(), clientID)
	if err != nil {
		s.logger.WithError(err).WithField("client_id", clientID).Error("Failed to load assessment")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load assessment"})
		return
	}
	if snap == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "client not found"})
		return
	}

	c.JSON(http.StatusOK, snap)
}

// updateEnvelope is one typed update command in a PATCH request. The op
// discriminator selects which command the data decodes into.
type updateEnvelope struct {
	Op   string          `json:"op"`
	Data json.RawMessage `json:"data"`
}

type updateRequest struct {
	Updates []updateEnvelope `json:"updates"`
}

// decodeUpdate maps an envelope onto a typed update command.
func decodeUpdate(env updateEnvelope, now time.Time) (domain.Update, error) {
	switch env.Op {
	case "set_vitals":
		var u domain.SetVitals
		if err := json.Unmarshal(env.Data, &u); err != nil {
			return nil, err
		}
		return u, nil
	case "set_lipids":
		var u domain.SetLipids
		if err := json.Unmarshal(env.Data, &u); err != nil {
			return nil, err
		}
		return u, nil
	case "set_urinalysis":
		var u domain.SetUrinalysis
		if err := json.Unmarshal(env.Data, &u); err != nil {
			return nil, err
		}
		return u, nil
	case "set_chalder_item":
		var u domain.SetChalderItem
		if err := json.Unmarshal(env.Data, &u); err != nil {
			return nil, err
		}
		return u, nil
	case "set_wellbeing_domain":
		var u domain.SetWellbeingDomain
		if err := json.Unmarshal(env.Data, &u); err != nil {
			return nil, err
		}
		return u, nil
	case "give_consent":
		return domain.GiveConsent{At: now}, nil
	case "revoke_consent":
		return domain.RevokeConsent{}, nil
	}
	return nil, fmt.Errorf("unknown update op %q", env.Op)
}

// handleUpdateAssessment applies typed update commands to a stored record.
// All updates are validated against a working copy first, so a failing
// command leaves the stored record untouched.
func (s *Server) handleUpdateAssessment(c *gin.Context) {
	clientID := c.Param("client_id")

	var req updateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid request body: %v", err)})
		return
	}
	if len(req.Updates) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no updates given"})
		return
	}

	snap, err := s.store.GetSnapshot(c.Request.Context(), clientID)
	if err != nil {
		s.logger.WithError(err).WithField("client_id", clientID).Error("Failed to load assessment")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load assessment"})
		return
	}
	if snap == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "client not found"})
		return
	}

	now := time.Now()
	working := *snap.Record
	for i, env := range req.Updates {
		update, err := decodeUpdate(env, now)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("update %d: %v", i, err)})
			return
		}
		if err := update.Apply(&working); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": fmt.Sprintf("update %d: %v", i, err)})
			return
		}
	}

	snap.Record = &working
	if err := s.store.SaveSnapshot(c.Request.Context(), snap); err != nil {
		s.logger.WithError(err).WithField("client_id", clientID).Error("Failed to save assessment")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save assessment"})
		return
	}

	s.logger.WithFields(logrus.Fields{
		"client_id": clientID,
		"updates":   len(req.Updates),
	}).Info("Assessment updated")
	c.JSON(http.StatusOK, snap)
}

// deriveRequest carries a record plus an optional reference date
// (YYYY-MM-DD). Without a date the server's current day is used.
type deriveRequest struct {
	Record domain.AssessmentRecord `json:"record"`
	Date   string                  `json:"date"`
}

func (r *deriveRequest) referenceDate() (time.Time, error) {
	if r.Date == "" {
		return time.Now(), nil
	}
	return time.Parse("2006-01-02", r.Date)
}

// handleDerive computes derived values for a record without storing it.
func (s *Server) handleDerive(c *gin.Context) {
	var req deriveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid request body: %v", err)})
		return
	}

	today, err := req.referenceDate()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid date: %v", err)})
		return
	}

	derived := service.Derive(&req.Record, today)
	c.JSON(http.StatusOK, gin.H{"derived": derived})
}

// handleComposeReport composes the narrative report for a record.
func (s *Server) handleComposeReport(c *gin.Context) {
	var req deriveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid request body: %v", err)})
		return
	}

	today, err := req.referenceDate()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid date: %v", err)})
		return
	}

	report, err := s.reports.Compose(&req.Record, today)
	if err != nil {
		if errors.Is(err, service.ErrConsentRequired) {
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
			return
		}
		s.logger.WithError(err).Error("Failed to compose report")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compose report"})
		return
	}

	c.JSON(http.StatusOK, report)
}
