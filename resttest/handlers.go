package resttest

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// lookup finds the resource for a request, answering 404 when the path
// segment names no registered type.
func (s *Server) lookup(c *gin.Context) (*resource, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	res, ok := s.resources[c.Param("resource")]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown resource " + c.Param("resource")})
		return nil, false
	}
	return res, true
}

func (s *Server) handleList(c *gin.Context) {
	res, ok := s.lookup(c)
	if !ok {
		return
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	records := make([]map[string]any, 0, len(res.records))
	for _, record := range res.records {
		if matchesQuery(record, c.Request.URL.Query()) {
			records = append(records, copyRecord(record))
		}
	}
	c.JSON(http.StatusOK, gin.H{res.plural: records})
}

func (s *Server) handleFind(c *gin.Context) {
	res, ok := s.lookup(c)
	if !ok {
		return
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := res.records[c.Param("id")]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "record not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{res.singular: copyRecord(record)})
}

func (s *Server) handleCreate(c *gin.Context) {
	res, ok := s.lookup(c)
	if !ok {
		return
	}

	attrs, ok := s.bindDocument(c, res)
	if !ok {
		return
	}
	if !s.runValidation(c, res, attrs) {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	res.insert(attrs)
	c.JSON(http.StatusCreated, gin.H{res.singular: copyRecord(attrs)})
}

func (s *Server) handleUpdate(c *gin.Context) {
	res, ok := s.lookup(c)
	if !ok {
		return
	}

	attrs, ok := s.bindDocument(c, res)
	if !ok {
		return
	}
	if !s.runValidation(c, res, attrs) {
		return
	}

	id := c.Param("id")

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := res.records[id]; !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "record not found"})
		return
	}
	attrs["id"] = id
	res.records[id] = attrs
	c.JSON(http.StatusOK, gin.H{res.singular: copyRecord(attrs)})
}

func (s *Server) handleDelete(c *gin.Context) {
	res, ok := s.lookup(c)
	if !ok {
		return
	}

	id := c.Param("id")

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := res.records[id]; !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "record not found"})
		return
	}
	delete(res.records, id)
	c.Status(http.StatusNoContent)
}

// bindDocument unwraps the singular root key from the request body.
func (s *Server) bindDocument(c *gin.Context, res *resource) (map[string]any, bool) {
	var doc map[string]map[string]any
	if err := c.ShouldBindJSON(&doc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, false
	}
	attrs, ok := doc[res.singular]
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("missing %q root key", res.singular)})
		return nil, false
	}
	return attrs, true
}

// runValidation answers 422 with field messages when the resource's
// validator rejects the attributes.
func (s *Server) runValidation(c *gin.Context, res *resource, attrs map[string]any) bool {
	if res.validate == nil {
		return true
	}
	if fields := res.validate(attrs); len(fields) > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": fields})
		return false
	}
	return true
}

// matchesQuery reports whether every query parameter equals the record's
// attribute, compared as strings.
func matchesQuery(record map[string]any, query map[string][]string) bool {
	for key, values := range query {
		if len(values) == 0 {
			continue
		}
		attr, ok := record[key]
		if !ok || fmt.Sprintf("%v", attr) != values[0] {
			return false
		}
	}
	return true
}
