package dtos

import "encoding/json"

// LiveEnvelope is the wrapper of every Live API response
type LiveEnvelope struct {
	ErrorCode int             `json:"errorCode"`
	Result    json.RawMessage `json:"result"`
}

// Session is one simulation server session
type Session struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	MaxUsers     int    `json:"maxUsers"`
	UserCount    int    `json:"userCount"`
	Type         int    `json:"type"`
	WorldType    int    `json:"worldType"`
	MinimumGrade int    `json:"minimumGrade"`
}

// LiveApiUserStatsReq is the body of POST /users
type LiveApiUserStatsReq struct {
	UserIDs        []string `json:"userIds,omitempty"`
	DiscourseNames []string `json:"discourseNames,omitempty"`
}
