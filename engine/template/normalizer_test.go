package template

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/agentdesk/agentdesk/engine/category"
)

type normalizeCase struct {
	raw  string
	want category.Category
}

func assertNormalizes(t *testing.T, tpl *Template, cases []normalizeCase) {
	t.Helper()
	for _, tc := range cases {
		assert.Equal(t, tc.want, tpl.Normalizer.Normalize(tc.raw), "input %q", tc.raw)
	}
}

func TestITHelpdesk_Normalize(t *testing.T) {
	tpl := ITHelpdesk()

	t.Run("Should route a forgotten password to password_reset", func(t *testing.T) {
		assert.Equal(t, PasswordReset, tpl.Normalizer.Normalize("I forgot my password"))
	})

	t.Run("Should resolve canonical tokens and keywords", func(t *testing.T) {
		assertNormalizes(t, tpl, []normalizeCase{
			{"HARDWARE_ISSUE", HardwareIssue},
			{"Category: network_issue.", NetworkIssue},
			{"my vpn keeps dropping", NetworkIssue},
			{"the printer is jammed", HardwareIssue},
			{"excel crashes on start", SoftwareIssue},
		})
	})

	t.Run("Should fall back to software_issue", func(t *testing.T) {
		assertNormalizes(t, tpl, []normalizeCase{{"", SoftwareIssue}, {"   ", SoftwareIssue}, {"hmm", SoftwareIssue}})
	})
}

func TestCustomerSupport_Normalize(t *testing.T) {
	tpl := CustomerSupport()

	t.Run("Should test ticket before escalation", func(t *testing.T) {
		assert.Equal(t, Ticket, tpl.Normalizer.Normalize("please escalate this ticket"))
	})

	t.Run("Should resolve each category", func(t *testing.T) {
		assertNormalizes(t, tpl, []normalizeCase{
			{"FAQ", FAQ},
			{"escalation", Escalation},
			{"ticket", Ticket},
			{"", Ticket},
			{"unclear", Ticket},
		})
	})
}

func TestSales_Normalize(t *testing.T) {
	tpl := Sales()

	t.Run("Should prefer objection handling over a bare email mention", func(t *testing.T) {
		assert.Equal(t, ObjectionHandling, tpl.Normalizer.Normalize("email about a pricing objection"))
	})

	t.Run("Should follow the declared rule order", func(t *testing.T) {
		assertNormalizes(t, tpl, []normalizeCase{
			{"lead_scoring", LeadScoring},
			{"please score this lead", LeadScoring},
			{"company research on Acme", CompanyResearch},
			{"compose an email", EmailOutreach},
			{"bant check", LeadScoring},
			{"competitive intel", CompanyResearch},
			{"write something", EmailOutreach},
			{"", LeadScoring},
		})
	})
}

func TestEcommerce_Normalize(t *testing.T) {
	t.Run("Should resolve each category", func(t *testing.T) {
		assertNormalizes(t, Ecommerce(), []normalizeCase{
			{"track my order", OrderTracking},
			{"I want a refund", ReturnRefund},
			{"recommend a gift", Recommendation},
			{"product search", ProductSearch},
			{"hello", ProductSearch},
		})
	})
}

func TestLegal_Normalize(t *testing.T) {
	t.Run("Should resolve each category", func(t *testing.T) {
		assertNormalizes(t, Legal(), []normalizeCase{
			{"extract the termination clause", ClauseExtraction},
			{"risk analysis please", RiskAnalysis},
			{"compare these two", Comparison},
			{"summarize", Summarization},
			{"", Summarization},
		})
	})
}

func TestContentMarketing_Normalize(t *testing.T) {
	t.Run("Should resolve each category", func(t *testing.T) {
		assertNormalizes(t, ContentMarketing(), []normalizeCase{
			{"seo_analysis", SEOAnalysis},
			{"write a blog post", BlogWriting},
			{"linkedin caption", SocialMedia},
			{"keyword ranking", SEOAnalysis},
			{"editorial calendar", ContentStrategy},
			{"", BlogWriting},
		})
	})
}

func TestDataPipeline_Normalize(t *testing.T) {
	tpl := DataPipeline()

	t.Run("Should return pipeline_health for empty input", func(t *testing.T) {
		assert.Equal(t, PipelineHealth, tpl.Normalizer.Normalize(""))
	})

	t.Run("Should resolve keywords in table order", func(t *testing.T) {
		assertNormalizes(t, tpl, []normalizeCase{
			{"schema drift detected", DataQuality},
			{"page the on-call", AlertManagement},
			{"backfill yesterday", Recovery},
			{"airflow dag", PipelineHealth},
		})
	})
}

func TestHROnboarding_Normalize(t *testing.T) {
	t.Run("Should resolve each category", func(t *testing.T) {
		assertNormalizes(t, HROnboarding(), []normalizeCase{
			{"submit my w-4", DocumentCollection},
			{"laptop", ITSetup},
			{"orientation", TrainingSchedule},
			{"buddy", BuddyMatch},
			{"", DocumentCollection},
		})
	})
}
