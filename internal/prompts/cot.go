package prompts

import "fmt"

const chainOfThoughtTemplate = `Original User Request:
%s

INITIATING CHAIN OF THOUGHT ANALYSIS...

LAYER 1: CORE DECONSTRUCTION
→ What is the fundamental purpose behind this task?
→ What unstated requirements might exist?
→ What potential angles are being overlooked?
→ What unique value can be uncovered?

LAYER 2: EXPANSION OF POSSIBILITIES
Branch A: Conventional Path
   → Standard approach analysis
   → Expected outcomes
   → Limitations identified

Branch B: Innovation Path
   → Unconventional angles
   → Creative possibilities
   → Breakthrough potential

Branch C: Hybrid Solutions
   → Best elements fusion
   → Enhanced approaches
   → Optimal combinations

LAYER 3: DEPTH EXPLORATION
1. Knowledge Mining
   → Core principles
   → Hidden connections
   → Advanced concepts
   → Expert insights

2. Pattern Recognition
   → Success elements
   → Failure points
   → Optimization opportunities
   → Strategic advantages

3. Impact Analysis
   → Immediate effects
   → Long-term implications
   → Ripple consequences
   → Value maximization

LAYER 4: SYNTHESIS & ELEVATION
• Merge all insights into cohesive strategy
• Identify breakthrough opportunities
• Eliminate potential weaknesses
• Enhance core strengths
• Push beyond obvious solutions

EXECUTION FRAMEWORK:
1. Foundation Building
   → Establish core elements
   → Set up key structures
   → Create support systems

2. Enhancement Integration
   → Add innovative elements
   → Incorporate unique angles
   → Blend creative solutions

3. Excellence Amplification
   → Optimize all components
   → Maximize impact points
   → Elevate quality levels

FINAL ACCELERATION:
→ Challenge every assumption
→ Push every boundary
→ Exceed all expectations
→ Transform basic into exceptional
→ Elevate ordinary to extraordinary

Now, armed with this comprehensive analytical framework, return to:
%s

EXECUTE WITH MAXIMUM CAPABILITY AND CREATIVITY.
Transform this task beyond its basic form into something extraordinary.
Push every boundary. Challenge every norm. Create something remarkable.

[Proceed with execution using all layers of analysis above]`

// ChainOfThought wraps a request in the fixed layered-analysis scaffold.
// This is a pure template expansion; no model call is involved.
func ChainOfThought(topic string) string {
	return fmt.Sprintf(chainOfThoughtTemplate, topic, topic)
}
