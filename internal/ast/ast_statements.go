package ast

// Statement is implemented by the three statement forms that appear in
// scenario `given`/`when` blocks (§6 External Interfaces).
type Statement interface {
	Node
	statementNode()
}

// AssignmentStmt binds Value to Target in the current scenario environment.
type AssignmentStmt struct {
	Target string
	Value  Expression
	Loc    SourceLocation
}

func (s *AssignmentStmt) Location() SourceLocation { return s.Loc }
func (s *AssignmentStmt) statementNode()           {}

// CallStmt invokes Call, optionally binding its result to Target (a target
// function invocation when Call's callee names a behavior).
type CallStmt struct {
	Target *string
	Call   *CallExpression
	Loc    SourceLocation
}

func (s *CallStmt) Location() SourceLocation { return s.Loc }
func (s *CallStmt) statementNode()           {}

// LoopStmt runs Body Count times, optionally binding the 0-based iteration
// index to Variable. Bounded by the scenario runner's recursion/step cap.
type LoopStmt struct {
	Count    Expression
	Variable *string
	Body     []Statement
	Loc      SourceLocation
}

func (s *LoopStmt) Location() SourceLocation { return s.Loc }
func (s *LoopStmt) statementNode()           {}
