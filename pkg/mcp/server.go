package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/sunfmin/mymath/pkg/logger"
	"github.com/sunfmin/mymath/pkg/mymath"
	"github.com/sunfmin/mymath/pkg/smoke"
	"github.com/sunfmin/mymath/pkg/types"
)

// ServerName is the name announced to MCP clients
const ServerName = "Math Library MCP"

// MathServer encapsulates the MCP server with the math library tools
type MathServer struct {
	server  *server.MCPServer
	version string
}

// NewMathServer creates a new MCP server exposing the math library
func NewMathServer(version string) *MathServer {
	s := &MathServer{
		server:  server.NewMCPServer(ServerName, version),
		version: version,
	}

	s.registerTools()

	return s
}

// Server returns the underlying MCP server
func (s *MathServer) Server() *server.MCPServer {
	return s.server
}

// registerTools registers all tools
func (s *MathServer) registerTools() {
	s.addPingTool()
	s.addInfoTool()

	s.addBinaryIntTool("add", "Add two integers", s.Add)
	s.addBinaryIntTool("subtract", "Subtract b from a", s.Subtract)
	s.addBinaryIntTool("multiply", "Multiply two integers", s.Multiply)
	s.addDivideTool()
	s.addPowerTool()

	s.addSmokeTestTool()
}

// operations lists the tools that compute results, in registration order
var operations = []string{"add", "subtract", "multiply", "divide", "power"}

func (s *MathServer) addPingTool() {
	pingTool := mcp.NewTool("ping",
		mcp.WithDescription("Simple ping tool to test connection"),
	)

	s.server.AddTool(pingTool, s.Ping)
}

func (s *MathServer) addInfoTool() {
	infoTool := mcp.NewTool("info",
		mcp.WithDescription("Describe the math library and the available operations"),
	)

	s.server.AddTool(infoTool, s.Info)
}

// addBinaryIntTool registers a tool taking integer operands a and b
func (s *MathServer) addBinaryIntTool(name, description string, handler server.ToolHandlerFunc) {
	tool := mcp.NewTool(name,
		mcp.WithDescription(description),
		mcp.WithNumber("a",
			mcp.Required(),
			mcp.Description("First operand (integer)"),
		),
		mcp.WithNumber("b",
			mcp.Required(),
			mcp.Description("Second operand (integer)"),
		),
	)

	s.server.AddTool(tool, handler)
}

func (s *MathServer) addDivideTool() {
	divideTool := mcp.NewTool("divide",
		mcp.WithDescription("Divide a by b; fails when b is zero"),
		mcp.WithNumber("a",
			mcp.Required(),
			mcp.Description("Dividend"),
		),
		mcp.WithNumber("b",
			mcp.Required(),
			mcp.Description("Divisor, must not be zero"),
		),
	)

	s.server.AddTool(divideTool, s.Divide)
}

func (s *MathServer) addPowerTool() {
	powerTool := mcp.NewTool("power",
		mcp.WithDescription("Raise base to a non-negative integer exponent"),
		mcp.WithNumber("base",
			mcp.Required(),
			mcp.Description("Base (integer)"),
		),
		mcp.WithNumber("exponent",
			mcp.Required(),
			mcp.Description("Exponent (non-negative integer)"),
		),
	)

	s.server.AddTool(powerTool, s.Power)
}

func (s *MathServer) addSmokeTestTool() {
	smokeTool := mcp.NewTool("smoke_test",
		mcp.WithDescription("Run the consumer smoke test and return its console output"),
	)

	s.server.AddTool(smokeTool, s.SmokeTest)
}

// newErrorResult creates a tool result that represents an error
func newErrorResult(format string, args ...interface{}) *mcp.CallToolResult {
	result := mcp.NewToolResultText(fmt.Sprintf("Error: "+format, args...))
	result.IsError = true
	return result
}

// Ping handles the ping command
func (s *MathServer) Ping(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	logger.Debug("Received ping request")
	return mcp.NewToolResultText("pong"), nil
}

// Info handles the info command
func (s *MathServer) Info(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	logger.Debug("Received info request")

	response := types.InfoResponse{
		Name:        mymath.Name,
		Version:     mymath.Version,
		License:     mymath.License,
		Description: mymath.Description,
		Server:      s.version,
		Operations:  operations,
	}

	return newToolResultJSON(response)
}

// Add handles the add command
func (s *MathServer) Add(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	logger.Debug("Received add request")

	a, b, errResult := binaryIntArgs(request)
	if errResult != nil {
		return errResult, nil
	}

	result := mymath.Add(a, b)
	return newToolResultJSON(intResponse("add", a, b, result, fmt.Sprintf("%d + %d = %d", a, b, result)))
}

// Subtract handles the subtract command
func (s *MathServer) Subtract(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	logger.Debug("Received subtract request")

	a, b, errResult := binaryIntArgs(request)
	if errResult != nil {
		return errResult, nil
	}

	result := mymath.Subtract(a, b)
	return newToolResultJSON(intResponse("subtract", a, b, result, fmt.Sprintf("%d - %d = %d", a, b, result)))
}

// Multiply handles the multiply command
func (s *MathServer) Multiply(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	logger.Debug("Received multiply request")

	a, b, errResult := binaryIntArgs(request)
	if errResult != nil {
		return errResult, nil
	}

	result := mymath.Multiply(a, b)
	return newToolResultJSON(intResponse("multiply", a, b, result, fmt.Sprintf("%d * %d = %d", a, b, result)))
}

// Divide handles the divide command
func (s *MathServer) Divide(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	logger.Debug("Received divide request")

	a, err := floatArg(request, "a")
	if err != nil {
		return newErrorResult("%v", err), nil
	}
	b, err := floatArg(request, "b")
	if err != nil {
		return newErrorResult("%v", err), nil
	}

	result, err := mymath.Divide(a, b)
	if err != nil {
		logger.Error("Failed to divide", "error", err, "a", a, "b", b)
		return newErrorResult("failed to divide: %v", err), nil
	}

	response := types.OperationResponse{
		Status:     "success",
		Operation:  "divide",
		Operands:   map[string]any{"a": a, "b": b},
		Result:     result,
		Expression: fmt.Sprintf("%g / %g = %g", a, b, result),
	}

	return newToolResultJSON(response)
}

// Power handles the power command
func (s *MathServer) Power(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	logger.Debug("Received power request")

	base, err := intArg(request, "base")
	if err != nil {
		return newErrorResult("%v", err), nil
	}
	exponent, err := intArg(request, "exponent")
	if err != nil {
		return newErrorResult("%v", err), nil
	}

	result, err := mymath.Power(base, exponent)
	if err != nil {
		logger.Error("Failed to compute power", "error", err, "base", base, "exponent", exponent)
		return newErrorResult("failed to compute power: %v", err), nil
	}

	response := types.OperationResponse{
		Status:     "success",
		Operation:  "power",
		Operands:   map[string]any{"base": base, "exponent": exponent},
		Result:     result,
		Expression: fmt.Sprintf("%d ^ %d = %d", base, exponent, result),
	}

	return newToolResultJSON(response)
}

// SmokeTest handles the smoke_test command
func (s *MathServer) SmokeTest(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	logger.Debug("Received smoke_test request")

	var out bytes.Buffer
	code := smoke.Run(&out, smoke.DefaultOps())

	status := "success"
	if code != smoke.ExitSuccess {
		status = "failure"
	}

	response := types.SmokeTestResponse{
		Status:   status,
		Passed:   code == smoke.ExitSuccess,
		ExitCode: code,
		Output:   out.String(),
	}

	return newToolResultJSON(response)
}

func intResponse(operation string, a, b, result int, expression string) types.OperationResponse {
	return types.OperationResponse{
		Status:     "success",
		Operation:  operation,
		Operands:   map[string]any{"a": a, "b": b},
		Result:     result,
		Expression: expression,
	}
}

// binaryIntArgs reads the integer operands a and b, or returns an error result
func binaryIntArgs(request mcp.CallToolRequest) (int, int, *mcp.CallToolResult) {
	a, err := intArg(request, "a")
	if err != nil {
		return 0, 0, newErrorResult("%v", err)
	}
	b, err := intArg(request, "b")
	if err != nil {
		return 0, 0, newErrorResult("%v", err)
	}
	return a, b, nil
}

// floatArg reads a required number argument
func floatArg(request mcp.CallToolRequest, name string) (float64, error) {
	val, ok := request.Params.Arguments[name]
	if !ok || val == nil {
		return 0, fmt.Errorf("missing required argument %q", name)
	}

	f, ok := val.(float64)
	if !ok {
		return 0, fmt.Errorf("argument %q must be a number, got %T", name, val)
	}
	return f, nil
}

// intArg reads a required number argument that must hold an integer value
func intArg(request mcp.CallToolRequest, name string) (int, error) {
	f, err := floatArg(request, name)
	if err != nil {
		return 0, err
	}

	if f != math.Trunc(f) {
		return 0, fmt.Errorf("argument %q must be an integer, got %g", name, f)
	}
	if f < math.MinInt || f >= -math.MinInt {
		return 0, fmt.Errorf("argument %q is out of integer range: %g", name, f)
	}
	return int(f), nil
}

func newToolResultJSON(data interface{}) (*mcp.CallToolResult, error) {
	jsonBytes, err := json.Marshal(data)
	if err != nil {
		logger.Warn("Failed to serialize tool result", "error", err)
		return newErrorResult("failed to serialize data: %v", err), nil
	}
	return mcp.NewToolResultText(string(jsonBytes)), nil
}
