package domain

import "strings"

// Enum values are stored as their snake_case string forms. Valid() is the
// write-time domain check; repositories reject unknown values on read with
// a descriptive error rather than surfacing them to callers.

type JobType string

const (
	JobTypeFullTime   JobType = "full_time"
	JobTypePartTime   JobType = "part_time"
	JobTypeContract   JobType = "contract"
	JobTypeFreelance  JobType = "freelance"
	JobTypeInternship JobType = "internship"
	JobTypeTemporary  JobType = "temporary"
)

func (t JobType) Valid() bool {
	switch t {
	case JobTypeFullTime, JobTypePartTime, JobTypeContract, JobTypeFreelance, JobTypeInternship, JobTypeTemporary:
		return true
	}
	return false
}

type RemoteType string

const (
	RemoteTypeOnSite RemoteType = "on_site"
	RemoteTypeRemote RemoteType = "remote"
	RemoteTypeHybrid RemoteType = "hybrid"
)

func (t RemoteType) Valid() bool {
	switch t {
	case RemoteTypeOnSite, RemoteTypeRemote, RemoteTypeHybrid:
		return true
	}
	return false
}

type ExperienceLevel string

const (
	ExperienceEntryLevel  ExperienceLevel = "entry_level"
	ExperienceMidLevel    ExperienceLevel = "mid_level"
	ExperienceSeniorLevel ExperienceLevel = "senior_level"
	ExperienceLead        ExperienceLevel = "lead"
	ExperienceExecutive   ExperienceLevel = "executive"
)

func (l ExperienceLevel) Valid() bool {
	switch l {
	case ExperienceEntryLevel, ExperienceMidLevel, ExperienceSeniorLevel, ExperienceLead, ExperienceExecutive:
		return true
	}
	return false
}

// CanonicalExperienceLevel normalizes the Title-Case and hyphenated variants
// that appear in scraped data ("Senior Level", "entry-level") to the stored
// snake_case form. The result still needs a Valid() check.
func CanonicalExperienceLevel(raw string) ExperienceLevel {
	s := strings.ToLower(strings.TrimSpace(raw))
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, "-", "_")
	return ExperienceLevel(s)
}

type JobStatus string

const (
	JobStatusActive   JobStatus = "active"
	JobStatusInactive JobStatus = "inactive"
	JobStatusFilled   JobStatus = "filled"
	JobStatusExpired  JobStatus = "expired"
)

func (s JobStatus) Valid() bool {
	switch s {
	case JobStatusActive, JobStatusInactive, JobStatusFilled, JobStatusExpired:
		return true
	}
	return false
}

type VerificationStatus string

const (
	VerificationUnverified VerificationStatus = "unverified"
	VerificationActive     VerificationStatus = "active"
	VerificationExpired    VerificationStatus = "expired"
	VerificationRemoved    VerificationStatus = "removed"
)

func (s VerificationStatus) Valid() bool {
	switch s {
	case VerificationUnverified, VerificationActive, VerificationExpired, VerificationRemoved:
		return true
	}
	return false
}

type CompanySizeCategory string

const (
	CompanySizeStartup    CompanySizeCategory = "startup"
	CompanySizeSmall      CompanySizeCategory = "small"
	CompanySizeMedium     CompanySizeCategory = "medium"
	CompanySizeLarge      CompanySizeCategory = "large"
	CompanySizeEnterprise CompanySizeCategory = "enterprise"
)

func (c CompanySizeCategory) Valid() bool {
	switch c {
	case CompanySizeStartup, CompanySizeSmall, CompanySizeMedium, CompanySizeLarge, CompanySizeEnterprise:
		return true
	}
	return false
}

type SeniorityLevel string

const (
	SeniorityIC       SeniorityLevel = "individual_contributor"
	SeniorityTeamLead SeniorityLevel = "team_lead"
	SeniorityManager  SeniorityLevel = "manager"
	SeniorityDirector SeniorityLevel = "director"
	SeniorityExec     SeniorityLevel = "executive"
)

func (s SeniorityLevel) Valid() bool {
	switch s {
	case SeniorityIC, SeniorityTeamLead, SeniorityManager, SeniorityDirector, SeniorityExec:
		return true
	}
	return false
}

type InteractionType string

const (
	InteractionViewed  InteractionType = "viewed"
	InteractionSaved   InteractionType = "saved"
	InteractionApplied InteractionType = "applied"
	InteractionHidden  InteractionType = "hidden"
)

func (t InteractionType) Valid() bool {
	switch t {
	case InteractionViewed, InteractionSaved, InteractionApplied, InteractionHidden:
		return true
	}
	return false
}

type ApplicationStatus string

const (
	ApplicationNotApplied   ApplicationStatus = "not_applied"
	ApplicationApplied      ApplicationStatus = "applied"
	ApplicationInterviewing ApplicationStatus = "interviewing"
	ApplicationRejected     ApplicationStatus = "rejected"
	ApplicationAccepted     ApplicationStatus = "accepted"
	ApplicationWithdrawn    ApplicationStatus = "withdrawn"
)

func (s ApplicationStatus) Valid() bool {
	switch s {
	case ApplicationNotApplied, ApplicationApplied, ApplicationInterviewing, ApplicationRejected, ApplicationAccepted, ApplicationWithdrawn:
		return true
	}
	return false
}

type TimelineEventType string

const (
	EventJobSaved             TimelineEventType = "job_saved"
	EventApplicationSubmitted TimelineEventType = "application_submitted"
	EventInterviewScheduled   TimelineEventType = "interview_scheduled"
	EventStatusChanged        TimelineEventType = "status_changed"
	EventNoteAdded            TimelineEventType = "note_added"
	EventFollowUpSent         TimelineEventType = "follow_up_sent"
	EventCustom               TimelineEventType = "custom_event"
)

func (t TimelineEventType) Valid() bool {
	switch t {
	case EventJobSaved, EventApplicationSubmitted, EventInterviewScheduled, EventStatusChanged, EventNoteAdded, EventFollowUpSent, EventCustom:
		return true
	}
	return false
}
