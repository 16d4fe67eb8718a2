package handlers

import (
	"context"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog/log"

	"github.com/janz-emmanuel24/peer-standard-school-of-house-managers/client"
)

// CatalogHandler exposes read-only course and job lookups.
type CatalogHandler struct {
	client *client.Client
}

func NewCatalogHandler(c *client.Client) *CatalogHandler { return &CatalogHandler{client: c} }

func (ch *CatalogHandler) RegisterTools(s *server.MCPServer) error {
	listCourses := mcp.NewTool("list_courses",
		mcp.WithDescription("List courses in the catalogue; returns id, title, category, level and fee"),
		mcp.WithString("query", mcp.Description("Free-text search over titles and descriptions")),
		mcp.WithString("category", mcp.Description("Category id filter")),
		mcp.WithString("difficulty_level", mcp.Description("beginner, intermediate or advanced")),
	)
	getCourse := mcp.NewTool("get_course",
		mcp.WithDescription("Get one course including its modules"),
		mcp.WithNumber("course_id", mcp.Required(), mcp.Description("Course id")),
	)
	listJobs := mcp.NewTool("list_job_postings",
		mcp.WithDescription("List open job postings; returns id, title, employer, location and salary range"),
		mcp.WithString("employment_type", mcp.Description("full_time, part_time, contract or temporary")),
		mcp.WithString("location", mcp.Description("Location filter")),
	)

	s.AddTool(listCourses, ch.handleListCourses)
	s.AddTool(getCourse, ch.handleGetCourse)
	s.AddTool(listJobs, ch.handleListJobPostings)
	return nil
}

type courseLite struct {
	ID              int64   `json:"id"`
	Title           string  `json:"title"`
	Category        *string `json:"category,omitempty"`
	DifficultyLevel string  `json:"difficulty_level,omitempty"`
	DurationWeeks   int     `json:"duration_weeks,omitempty"`
	TuitionFee      string  `json:"tuition_fee,omitempty"`
}

func (ch *CatalogHandler) handleListCourses(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query := optionalString(req, "query")
	params := client.Params{
		"category":         optionalString(req, "category"),
		"difficulty_level": optionalString(req, "difficulty_level"),
	}

	log.Debug().Str("query", query).Interface("params", params).Msg("list_courses invoked")

	start := time.Now()
	var courses []client.Course
	var err error
	if query != "" {
		courses, err = ch.client.SearchCourses(ctx, query)
	} else {
		courses, err = ch.client.GetCourses(ctx, params)
	}
	elapsed := time.Since(start)
	if err != nil {
		log.Error().Err(err).Dur("elapsed", elapsed).Msg("list_courses failed")
		return mcp.NewToolResultError(fmt.Sprintf("failed to list courses: %v", err)), nil
	}

	out := make([]courseLite, len(courses))
	for i, c := range courses {
		out[i] = courseLite{
			ID: c.ID, Title: c.Title, Category: c.CategoryName,
			DifficultyLevel: c.DifficultyLevel, DurationWeeks: c.DurationWeeks, TuitionFee: c.TuitionFee,
		}
	}
	return jsonResult(out)
}

func (ch *CatalogHandler) handleGetCourse(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireInt("course_id")
	if err != nil || id <= 0 {
		return mcp.NewToolResultError("course_id must be a positive integer"), nil
	}

	log.Debug().Int("course_id", id).Msg("get_course invoked")

	course, err := ch.client.GetCourse(ctx, int64(id))
	if err != nil {
		log.Error().Err(err).Int("course_id", id).Msg("get_course failed")
		return mcp.NewToolResultError(fmt.Sprintf("failed to get course: %v", err)), nil
	}
	return jsonResult(course)
}

type jobLite struct {
	ID             int64   `json:"id"`
	Title          string  `json:"title"`
	Employer       string  `json:"employer,omitempty"`
	EmploymentType string  `json:"employment_type,omitempty"`
	Location       string  `json:"location,omitempty"`
	SalaryMin      *string `json:"salary_min,omitempty"`
	SalaryMax      *string `json:"salary_max,omitempty"`
	IsUrgent       bool    `json:"is_urgent,omitempty"`
}

func (ch *CatalogHandler) handleListJobPostings(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := client.Params{
		"employment_type": optionalString(req, "employment_type"),
		"location":        optionalString(req, "location"),
	}

	log.Debug().Interface("params", params).Msg("list_job_postings invoked")

	start := time.Now()
	jobs, err := ch.client.GetJobPostings(ctx, params)
	elapsed := time.Since(start)
	if err != nil {
		log.Error().Err(err).Dur("elapsed", elapsed).Msg("list_job_postings failed")
		return mcp.NewToolResultError(fmt.Sprintf("failed to list job postings: %v", err)), nil
	}

	out := make([]jobLite, len(jobs))
	for i, j := range jobs {
		out[i] = jobLite{
			ID: j.ID, Title: j.Title, Employer: j.EmployerName, EmploymentType: j.EmploymentType,
			Location: j.Location, SalaryMin: j.SalaryMin, SalaryMax: j.SalaryMax, IsUrgent: j.IsUrgent,
		}
	}
	return jsonResult(out)
}
