package attack

// Node IDs of the e-commerce insider threat scenario.
const (
	NodeCCDBExfiltrated = "cc_db_exfiltrated"
	NodeInternalAccess  = "internal_access"
	NodeDatabaseAccess  = "database_access"
	NodeDataExtraction  = "data_extraction"
	NodeSpearPhishDev   = "spear_phish_dev"
	NodeAuthExploit     = "auth_service_exploit"
	NodePrivilegeEsc    = "privilege_escalation"
	NodeNetworkLateral  = "network_lateral_movement"
	NodeStealDBCreds    = "steal_db_credentials"
	NodeExfilChannel    = "establish_exfil_channel"
)

// ECommerceTree builds the curated insider threat scenario: an insider
// exfiltrating the credit card database of a cloud-hosted e-commerce
// platform. Time windows and costs follow MITRE ATT&CK-style estimates over
// a 72 hour operation.
func ECommerceTree() (*Tree, AttrMap) {
	t := NewTree()

	nodes := []string{
		NodeCCDBExfiltrated, NodeInternalAccess, NodeDatabaseAccess, NodeDataExtraction,
		NodeSpearPhishDev, NodeAuthExploit, NodePrivilegeEsc, NodeNetworkLateral,
		NodeStealDBCreds, NodeExfilChannel,
	}
	for _, id := range nodes {
		t.AddNode(id)
	}

	edges := [][2]string{
		// The goal needs database access and an extraction capability.
		{NodeCCDBExfiltrated, NodeDatabaseAccess},
		{NodeCCDBExfiltrated, NodeDataExtraction},

		// Database access needs internal access plus stolen credentials.
		{NodeDatabaseAccess, NodeInternalAccess},
		{NodeDatabaseAccess, NodeStealDBCreds},

		// Internal access has two alternative entry points.
		{NodeInternalAccess, NodeSpearPhishDev},
		{NodeInternalAccess, NodeAuthExploit},

		// Extraction needs escalated privileges and a covert channel.
		{NodeDataExtraction, NodePrivilegeEsc},
		{NodeDataExtraction, NodeExfilChannel},

		// Lateral movement is one route to privilege escalation.
		{NodePrivilegeEsc, NodeNetworkLateral},
	}
	for _, e := range edges {
		t.AddEdge(e[0], e[1])
	}

	attrs := AttrMap{
		NodeCCDBExfiltrated: {
			TimeInterval: [2]int{0, 72},
			Duration:     2,
			Cost:         5,
			Gate:         GateAND,
		},
		NodeInternalAccess: {
			TimeInterval: [2]int{0, 48},
			Duration:     1,
			Cost:         2,
			Gate:         GateOR,
		},
		NodeDatabaseAccess: {
			TimeInterval: [2]int{6, 60},
			Duration:     2,
			Cost:         3,
			Gate:         GateAND,
		},
		NodeDataExtraction: {
			TimeInterval: [2]int{12, 72},
			Duration:     4,
			Cost:         4,
			Gate:         GateAND,
		},
		NodePrivilegeEsc: {
			TimeInterval: [2]int{8, 48},
			Duration:     3,
			Cost:         6,
			Gate:         GateOR,
		},
		NodeSpearPhishDev: {
			TimeInterval: [2]int{0, 24},
			Duration:     4,
			Cost:         8,
			IsLeaf:       true,
		},
		NodeAuthExploit: {
			TimeInterval: [2]int{0, 12},
			Duration:     2,
			Cost:         12,
			IsLeaf:       true,
		},
		NodeNetworkLateral: {
			TimeInterval: [2]int{6, 36},
			Duration:     6,
			Cost:         10,
			IsLeaf:       true,
		},
		NodeStealDBCreds: {
			TimeInterval: [2]int{8, 48},
			Duration:     3,
			Cost:         7,
			IsLeaf:       true,
		},
		NodeExfilChannel: {
			TimeInterval: [2]int{12, 60},
			Duration:     5,
			Cost:         9,
			IsLeaf:       true,
		},
	}

	return t, attrs
}
