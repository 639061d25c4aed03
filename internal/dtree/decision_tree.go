// Package dtree compiles a match table (internal/mtable) into a decision
// tree of runtime shape-checks.
package dtree

import (
	"fmt"

	"github.com/rjooske/match-transformer/internal/mtype"
)

// DecisionTree is the compiler's output sum type: fail, success(caseIndex),
// or check(type, occurrence, success, fail).
type DecisionTree interface {
	isDecisionTree()
	String() string
}

// FailNode represents no case matching.
type FailNode struct{}

func (*FailNode) isDecisionTree() {}
func (*FailNode) String() string  { return "fail" }

// SuccessNode dispatches to the body of the case at CaseIndex.
type SuccessNode struct {
	CaseIndex int
}

func (*SuccessNode) isDecisionTree() {}
func (s *SuccessNode) String() string {
	return fmt.Sprintf("success(%d)", s.CaseIndex)
}

// CheckNode tests whether the value at Occurrence has outer constructor
// Type (arguments already made unknown), branching to Success or Fail.
type CheckNode struct {
	Type       mtype.Type
	Occurrence mtype.Occurrence
	Success    DecisionTree
	Fail       DecisionTree
}

func (*CheckNode) isDecisionTree() {}
func (c *CheckNode) String() string {
	return fmt.Sprintf("check(%s @ %s, success=%s, fail=%s)",
		c.Type.String(), c.Occurrence.String(), c.Success.String(), c.Fail.String())
}
