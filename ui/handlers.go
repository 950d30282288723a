package ui

import (
	"html/template"
	"math"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gomarkdown/markdown"

	"seqsense/app"
	"seqsense/domain/sequence"
	"seqsense/internal/errors"
)

// indexView backs the main page.
type indexView struct {
	Input      string
	Prediction *app.Prediction
	Error      string
}

func (s *Server) handleIndex(c *gin.Context) {
	s.render(c, http.StatusOK, "index.html", indexView{})
}

// handlePredictForm handles the input form: parse, predict, render the
// result fragment inside the page.
func (s *Server) handlePredictForm(c *gin.Context) {
	input := c.PostForm("sequence")
	seq, err := s.parser.Parse(input)
	if err != nil {
		s.render(c, http.StatusOK, "index.html", indexView{Input: input, Error: err.Error()})
		return
	}
	p := s.service.Predict(seq)
	s.render(c, http.StatusOK, "index.html", indexView{Input: input, Prediction: &p})
}

func (s *Server) handleHistory(c *gin.Context) {
	s.render(c, http.StatusOK, "history.html", gin.H{
		"Records": s.service.History(),
	})
}

// handleFamiliesPage renders the markdown guide describing every
// pattern family.
func (s *Server) handleFamiliesPage(c *gin.Context) {
	src, err := embeddedFiles.ReadFile("docs/families.md")
	if err != nil {
		c.String(http.StatusInternalServerError, "guide unavailable")
		return
	}
	body := markdown.ToHTML(src, nil, nil)
	s.render(c, http.StatusOK, "families.html", gin.H{
		"Guide": template.HTML(body),
	})
}

// predictRequest is the JSON API request. Either Values or Text must be
// set; Values wins when both are present.
type predictRequest struct {
	Values []float64 `json:"values" binding:"omitempty,min=3,max=20"`
	Text   string    `json:"text"`
}

func (s *Server) sequenceFromRequest(req predictRequest) (sequence.Sequence, error) {
	if len(req.Values) > 0 {
		seq := sequence.Sequence(req.Values)
		if !seq.AllFinite() {
			return nil, errors.InvalidInput("values must be finite numbers")
		}
		if seq.Len() < sequence.MinLength {
			return nil, errors.InvalidInput("need at least %d values", sequence.MinLength)
		}
		if seq.Len() > sequence.MaxLength {
			seq = seq[:sequence.MaxLength]
		}
		return seq, nil
	}
	return s.parser.Parse(req.Text)
}

func (s *Server) handlePredictJSON(c *gin.Context) {
	var req predictRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	seq, err := s.sequenceFromRequest(req)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	p := s.service.Predict(seq)
	c.JSON(http.StatusOK, predictResponse(p))
}

type batchRequest struct {
	Sequences [][]float64 `json:"sequences" binding:"required,min=1,max=100"`
}

func (s *Server) handlePredictBatch(c *gin.Context) {
	var req batchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	seqs := make([]sequence.Sequence, 0, len(req.Sequences))
	for i, values := range req.Sequences {
		seq := sequence.Sequence(values)
		if !seq.AllFinite() || seq.Len() < sequence.MinLength {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": errors.InvalidInput("sequence %d is invalid", i+1).Error(),
			})
			return
		}
		if seq.Len() > sequence.MaxLength {
			seq = seq[:sequence.MaxLength]
		}
		seqs = append(seqs, seq)
	}
	results, err := s.service.PredictBatch(c.Request.Context(), seqs)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	out := make([]gin.H, len(results))
	for i, p := range results {
		out[i] = predictResponse(p)
	}
	c.JSON(http.StatusOK, gin.H{"results": out})
}

func (s *Server) handleHistoryJSON(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"records": s.service.History()})
}

// familyInfo is one catalog listing entry.
type familyInfo struct {
	Position int    `json:"position"`
	Name     string `json:"name"`
}

func (s *Server) handleFamiliesJSON(c *gin.Context) {
	svc, ok := s.service.Predictor().(interface{ DetectorNames() []string })
	if !ok {
		c.JSON(http.StatusOK, gin.H{"families": []familyInfo{}})
		return
	}
	names := svc.DetectorNames()
	families := make([]familyInfo, len(names))
	for i, name := range names {
		families[i] = familyInfo{Position: i + 1, Name: name}
	}
	c.JSON(http.StatusOK, gin.H{"families": families})
}

// predictResponse shapes one prediction for the JSON API, including
// the chart payload of original and predicted points.
func predictResponse(p app.Prediction) gin.H {
	points := make([]gin.H, 0, len(p.Record.Input)+len(p.Record.Result.NextElements))
	for i, v := range p.Record.Input {
		points = append(points, gin.H{"x": i + 1, "y": v, "predicted": false})
	}
	for i, v := range p.Record.Result.NextElements {
		points = append(points, gin.H{"x": len(p.Record.Input) + i + 1, "y": v, "predicted": true})
	}
	return gin.H{
		"id":               p.Record.ID,
		"created_at":       p.Record.CreatedAt.Time(),
		"input":            p.Record.Input,
		"next_elements":    p.Record.Result.NextElements,
		"rule_type":        p.Record.Result.RuleType,
		"rule_description": p.Record.Result.RuleDescription,
		"formula":          p.Record.Result.Formula,
		"confidence":       roundConfidence(p.Record.Result.Confidence),
		"brief":            p.Brief,
		"chart":            points,
	}
}

func roundConfidence(v float64) float64 {
	return math.Round(v*100) / 100
}
