package domain

// InitializeParams is sent client->agent as the first message on a
// connection. It advertises the client's capabilities and identity.
type InitializeParams struct {
	ProtocolVersion    ProtocolVersion    `json:"protocolVersion"`
	ClientCapabilities ClientCapabilities `json:"clientCapabilities"`
	ClientInfo         *ImplementationInfo `json:"clientInfo,omitempty"`
}

// InitializeResult is the agent's response to InitializeParams.
type InitializeResult struct {
	ProtocolVersion   ProtocolVersion    `json:"protocolVersion"`
	AgentCapabilities AgentCapabilities  `json:"agentCapabilities"`
	AgentInfo         *ImplementationInfo `json:"agentInfo,omitempty"`
	AuthMethods       []AuthMethod       `json:"authMethods,omitempty"`
}

// ClientCapabilities describes what the client can do on the agent's
// behalf (fs access, terminal spawning).
type ClientCapabilities struct {
	FS       *FSCapabilities `json:"fs,omitempty"`
	Terminal bool            `json:"terminal,omitempty"`
}

// FSCapabilities describes which file system operations the client
// supports. Advisory only — neither the state machine nor the validator
// checks fs requests against these.
type FSCapabilities struct {
	ReadTextFile  bool `json:"readTextFile,omitempty"`
	WriteTextFile bool `json:"writeTextFile,omitempty"`
}

// AgentCapabilities describes what the agent supports.
type AgentCapabilities struct {
	LoadSession         bool                 `json:"loadSession,omitempty"`
	PromptCapabilities  *PromptCapabilities  `json:"promptCapabilities,omitempty"`
	MCP                 *MCPCapabilities     `json:"mcp,omitempty"`
	SessionCapabilities *SessionCapabilities `json:"sessionCapabilities,omitempty"`
}

// PromptCapabilities describes which content block kinds the agent
// accepts in a prompt. The Implementation lane checks these against the
// content blocks actually observed in SessionPromptParams/session updates.
type PromptCapabilities struct {
	Image           bool `json:"image,omitempty"`
	Audio           bool `json:"audio,omitempty"`
	EmbeddedContext bool `json:"embeddedContext,omitempty"`
}

// MCPCapabilities describes which MCP transports the agent accepts when a
// session attaches MCP servers.
type MCPCapabilities struct {
	HTTP bool `json:"http,omitempty"`
	SSE  bool `json:"sse,omitempty"`
}

// SessionCapabilities is a forward-compatible extension point; the
// original schema leaves it empty today.
type SessionCapabilities struct{}

// ImplementationInfo identifies an ACP implementation (client or agent) by
// name, optional display title, and version.
type ImplementationInfo struct {
	Name    string `json:"name"`
	Title   string `json:"title,omitempty"`
	Version string `json:"version"`
}

// AuthMethod describes one authentication mechanism the agent requires
// before it will accept session/new. Modeling only — this library never
// performs authentication itself.
type AuthMethod struct {
	ID          string `json:"id"`
	Description string `json:"description,omitempty"`
}

// AuthenticateParams requests the client authenticate using one of the
// methods advertised in InitializeResult.AuthMethods.
type AuthenticateParams struct {
	MethodID string `json:"methodId"`
}

// SessionNewParams requests the agent create a new session.
type SessionNewParams struct {
	CWD        string      `json:"cwd"`
	MCPServers []MCPServer `json:"mcpServers,omitempty"`
}

// SessionNewResult is the agent's response: the minted SessionID.
type SessionNewResult struct {
	SessionID SessionID `json:"sessionId"`
}

// SessionLoadParams asks the agent to reload and replay an existing
// session's history.
type SessionLoadParams struct {
	SessionID  SessionID   `json:"sessionId"`
	CWD        string      `json:"cwd"`
	MCPServers []MCPServer `json:"mcpServers,omitempty"`
}

// MCPServer describes an MCP server attached to a session. Exactly one of
// the stdio fields (Command/Args/Env) or the HTTP fields (Type/URL/
// Headers) is populated, distinguished by Type being empty (stdio) or set
// ("http"/"sse").
type MCPServer struct {
	Name    string        `json:"name"`
	Command string        `json:"command,omitempty"`
	Args    []string      `json:"args,omitempty"`
	Env     []EnvVariable `json:"env,omitempty"`
	Type    string        `json:"type,omitempty"`
	URL     string        `json:"url,omitempty"`
	Headers []HTTPHeader  `json:"headers,omitempty"`
}

// EnvVariable is a name/value pair for environment variables passed to a
// stdio MCP server or a terminal/create request.
type EnvVariable struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// HTTPHeader is a name/value pair for HTTP MCP server headers.
type HTTPHeader struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// SessionSetModeParams requests the agent switch its operating mode for a
// session. Legal at any time after session creation.
type SessionSetModeParams struct {
	SessionID SessionID `json:"sessionId"`
	ModeID    string    `json:"modeId"`
}
