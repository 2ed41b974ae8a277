package monitor

import "github.com/google/uuid"

// systemAgentName is the sentinel callers use for metrics and alerts not
// attributable to a specific agent.
const systemAgentName = "system"

// systemAgentID is the fixed UUID substituted for the "system" sentinel.
// Derived once with UUIDv5 so every process computes the same value.
var systemAgentID = uuid.NewSHA1(uuid.NameSpaceDNS, []byte(systemAgentName))

// SystemAgentID returns the fixed system agent UUID.
func SystemAgentID() string {
	return systemAgentID.String()
}

// EnsureUUID maps an agent identifier to a UUID string. Valid UUIDs pass
// through unchanged; the "system" sentinel maps to the fixed system UUID;
// any other free-form name maps deterministically via UUIDv5 in the DNS
// namespace. This is the single place identifier substitution happens.
func EnsureUUID(agentID string) string {
	if agentID == systemAgentName {
		return systemAgentID.String()
	}
	if parsed, err := uuid.Parse(agentID); err == nil {
		return parsed.String()
	}
	return uuid.NewSHA1(uuid.NameSpaceDNS, []byte(agentID)).String()
}
