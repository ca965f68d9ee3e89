package topdesk

// IncidentSummary is the flattened view of a TOPdesk incident handed back
// to callers. The unmodified upstream record rides along under raw_response
// so fields that are not explicitly surfaced stay reachable without a
// schema change.
type IncidentSummary struct {
	IncidentNumber   string         `json:"incident_number"`
	IncidentID       string         `json:"incident_id"`
	BriefDescription string         `json:"brief_description"`
	Status           string         `json:"status"`
	CallerName       string         `json:"caller_name"`
	CallerEmail      string         `json:"caller_email"`
	CallerPhone      string         `json:"caller_phone"`
	Category         string         `json:"category"`
	Priority         string         `json:"priority"`
	CreationDate     string         `json:"creation_date"`
	TargetDate       string         `json:"target_date"`
	RequestDetails   string         `json:"request_details"`
	Operator         *string        `json:"operator"`
	Branch           string         `json:"branch"`
	RawResponse      map[string]any `json:"raw_response"`
}

// Flatten projects a raw incident record into an IncidentSummary. Missing
// or oddly-typed fields default to empty values; this layer never fails and
// performs no business logic beyond presence checks.
func Flatten(raw map[string]any) *IncidentSummary {
	s := &IncidentSummary{
		IncidentNumber:   stringField(raw, "number"),
		IncidentID:       stringField(raw, "id"),
		BriefDescription: stringField(raw, "briefDescription"),
		Status:           nestedString(raw, "processingStatus", "name"),
		CallerName:       nestedString(raw, "caller", "dynamicName"),
		CallerEmail:      nestedString(raw, "caller", "email"),
		CallerPhone:      nestedString(raw, "caller", "phoneNumber"),
		Category:         nestedString(raw, "category", "name"),
		Priority:         nestedString(raw, "priority", "name"),
		CreationDate:     stringField(raw, "creationDate"),
		TargetDate:       stringField(raw, "targetDate"),
		RequestDetails:   stringField(raw, "request"),
		Branch:           nestedString(raw, "caller", "branch", "name"),
		RawResponse:      raw,
	}

	// Some tenants expose the status as a plain string instead of the
	// processingStatus object.
	if s.Status == "" {
		s.Status = stringField(raw, "status")
	}
	if s.Branch == "" {
		s.Branch = nestedString(raw, "callerBranch", "name")
	}
	if op := nestedString(raw, "operator", "name"); op != "" {
		s.Operator = &op
	}

	return s
}

// SuccessEnvelope wraps a flattened incident in the success result shape.
func SuccessEnvelope(s *IncidentSummary) any {
	return struct {
		Success bool `json:"success"`
		*IncidentSummary
	}{true, s}
}

// FailureEnvelope wraps a lookup error in the failure result shape. Every
// lookup failure, NotFound included, travels through here rather than as a
// protocol-level fault.
func FailureEnvelope(err error) any {
	return struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}{false, err.Error()}
}

// stringField returns raw[key] when it is a string, otherwise "".
func stringField(raw map[string]any, key string) string {
	v, _ := raw[key].(string)
	return v
}

// nestedString walks a path of nested objects and returns the string leaf,
// or "" as soon as any hop is missing or has an unexpected type.
func nestedString(raw map[string]any, path ...string) string {
	current := raw
	for i, key := range path {
		if i == len(path)-1 {
			v, _ := current[key].(string)
			return v
		}
		next, ok := current[key].(map[string]any)
		if !ok {
			return ""
		}
		current = next
	}
	return ""
}
