package services

import (
	"github.com/careerbridge/backend/database"
	"github.com/careerbridge/backend/models"
	"github.com/lib/pq"
)

// Skill tag index. Matching is intersection membership on the entity's tag
// array, filtered to publicly visible records and ordered by recency. There
// is no scoring beyond the overlap itself.

const DefaultRecommendationLimit = 5

// Visibility predicates: which records participate in skill matching. Each
// query below pushes the same condition down; candidates are still run
// through the predicate so it stays the single definition.

func MatchableJob(j models.Job) bool {
	return j.Status == models.StatusApproved
}

func MatchableInternship(i models.Internship) bool {
	return i.Status == models.StatusApproved
}

func MatchableCourse(c models.Course) bool {
	return c.Status == models.CoursePublished
}

func MatchableMentor(m models.Mentor) bool {
	return !m.IsPaused
}

func RecommendedJobs(skills []string, limit int) []models.Job {
	jobs := []models.Job{}
	if len(skills) == 0 {
		return jobs
	}
	var candidates []models.Job
	database.DB.
		Where("required_skills && ?", pq.StringArray(skills)).
		Where("status = ?", models.StatusApproved).
		Order("created_at desc").
		Limit(limit).
		Find(&candidates)
	for _, job := range candidates {
		if MatchableJob(job) {
			jobs = append(jobs, job)
		}
	}
	return jobs
}

func RecommendedInternships(skills []string, limit int) []models.Internship {
	internships := []models.Internship{}
	if len(skills) == 0 {
		return internships
	}
	var candidates []models.Internship
	database.DB.
		Where("required_skills && ?", pq.StringArray(skills)).
		Where("status = ?", models.StatusApproved).
		Order("created_at desc").
		Limit(limit).
		Find(&candidates)
	for _, internship := range candidates {
		if MatchableInternship(internship) {
			internships = append(internships, internship)
		}
	}
	return internships
}

func RecommendedCourses(skills []string, limit int) []models.Course {
	courses := []models.Course{}
	if len(skills) == 0 {
		return courses
	}
	var candidates []models.Course
	database.DB.
		Where("skills && ?", pq.StringArray(skills)).
		Where("status = ?", models.CoursePublished).
		Order("created_at desc").
		Limit(limit).
		Find(&candidates)
	for _, course := range candidates {
		if MatchableCourse(course) {
			courses = append(courses, course)
		}
	}
	return courses
}

func RecommendedMentors(skills []string, limit int) []models.Mentor {
	mentors := []models.Mentor{}
	if len(skills) == 0 {
		return mentors
	}
	var candidates []models.Mentor
	database.DB.
		Where("expertise_tags && ? OR sub_skills && ?", pq.StringArray(skills), pq.StringArray(skills)).
		Where("is_paused = ?", false).
		Order("created_at desc").
		Limit(limit).
		Find(&candidates)
	for _, mentor := range candidates {
		if MatchableMentor(mentor) {
			mentors = append(mentors, mentor)
		}
	}
	return mentors
}

// MentorMatchTags is the tag set a mentor is matched on: expertise tags plus
// sub-skills.
func MentorMatchTags(mentor models.Mentor) []string {
	tags := make([]string, 0, len(mentor.ExpertiseTags)+len(mentor.SubSkills))
	tags = append(tags, mentor.ExpertiseTags...)
	tags = append(tags, mentor.SubSkills...)
	return tags
}
