package agents

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/fusionkit/fusion-cli/internal/domain"
)

const designAnalysis = `### Visual Hierarchy
- Ensure clear information hierarchy
- Use consistent typography scales
- Implement proper spacing and alignment

### Color System
- Establish primary and secondary color palettes
- Ensure sufficient contrast ratios
- Consider accessibility requirements

### Layout Structure
- Implement responsive grid systems
- Optimize for key user flows
- Balance content density and whitespace

### Interaction Design
- Design intuitive navigation patterns
- Implement clear call-to-action elements
- Ensure consistent interaction feedback`

const userNeedsAssessment = `### Accessibility Requirements
- WCAG 2.1 AA compliance
- Screen reader compatibility
- Keyboard navigation support

### User Experience Goals
- Intuitive and efficient workflows
- Clear information architecture
- Consistent design language

### Technical Constraints
- Performance optimization
- Cross-platform compatibility
- Scalable design system`

const designRecommendations = `### High Priority
1. **Implement Design System**
   - Create consistent component library
   - Establish design tokens and variables
   - Document usage guidelines

2. **Enhance Accessibility**
   - Conduct accessibility audit
   - Implement ARIA labels and roles
   - Test with screen readers

3. **Optimize User Flows**
   - Map key user journeys
   - Identify pain points and opportunities
   - Streamline critical paths

### Medium Priority
4. **Visual Design Enhancement**
   - Refine color palette and typography
   - Improve visual hierarchy
   - Enhance micro-interactions

5. **Responsive Design**
   - Ensure mobile-first approach
   - Test across device sizes
   - Optimize touch targets

### Low Priority
6. **Performance Optimization**
   - Optimize image assets
   - Implement lazy loading
   - Monitor Core Web Vitals`

const implementationPriority = `Focus on accessibility and user experience optimization`

const vpDesignConfidence = 0.85

// VPDesign produces design analysis and recommendations for a request.
type VPDesign struct {
	logger *zap.Logger
}

var _ Agent = (*VPDesign)(nil)

func NewVPDesign(logger *zap.Logger) *VPDesign {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &VPDesign{logger: logger.Named("vp_design")}
}

func (a *VPDesign) Name() domain.AgentName { return domain.AgentVPDesign }

func (a *VPDesign) Description() string {
	return "Design analysis, user needs assessment and prioritised recommendations"
}

func (a *VPDesign) Run(ctx context.Context, req Request) (domain.AgentResult, error) {
	if err := ctx.Err(); err != nil {
		return domain.AgentResult{}, err
	}

	start := time.Now()

	var b strings.Builder
	b.WriteString("# VP Design Agent Response\n\n")
	b.WriteString("## Design Analysis\n\n")
	b.WriteString(designAnalysis)
	b.WriteString("\n\n## User Needs Assessment\n\n")
	b.WriteString(userNeedsAssessment)
	b.WriteString("\n\n## Recommendations\n\n")
	b.WriteString(designRecommendations)
	b.WriteString("\n\n## Implementation Priority\n\n")
	b.WriteString(implementationPriority)

	used, err := runTools(ctx, a.logger, &b, req)
	if err != nil {
		return domain.AgentResult{}, err
	}

	return domain.AgentResult{
		Agent:         domain.AgentVPDesign,
		Input:         req.Input,
		Output:        b.String(),
		Confidence:    vpDesignConfidence,
		ExecutionTime: time.Since(start),
		ToolsUsed:     used,
	}, nil
}
