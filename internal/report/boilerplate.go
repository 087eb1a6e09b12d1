package report

// Fixed prose sections of the document. These are engagement-independent:
// the confidentiality notice, disclaimer, and methodology read the same for
// every export, and the placeholder sections are filled in by the report
// author after generation.

// placeholderText marks sections that the assembler cannot derive from
// records and that are written by hand after export.
const placeholderText = "PLACEHOLDER - to be completed by the report author.\n\n"

// engagementOverview is the opening boilerplate of every report.
const engagementOverview = `\newpage

# Engagement Overview

## Confidentiality Notice

This document contains sensitive security information and is intended solely for authorized recipients.

**Unauthorized disclosure, distribution, or use of the contents of this report is prohibited.**

All findings and data are provided exclusively for the purpose of this assessment.

---

## Disclaimer

This report represents a point-in-time assessment based on the information and access available during the engagement.

**Absence of evidence is not evidence of absence: systems not tested may still contain vulnerabilities.**

Security posture may change over time due to configuration changes, patching, or emerging threats.

***

## Methodology

**Testing followed a structured, operator-driven approach:**

1. External and internal enumeration of hosts, services, and applications
2. Vulnerability identification and validation through controlled exploitation
3. Post-exploitation enumeration to identify lateral movement paths and privilege escalation opportunities
4. Evidence collection (screenshots + terminal logs) to support reproducibility
5. Consolidation of findings into an attack chain narrative and remediation guidance

---
`

// chainOfCompromiseOverview explains the scope of the attack-path section.
const chainOfCompromiseOverview = `The Chain of Compromise captures the **identified minimal, coherent path** an external,
unauthenticated adversary could traverse to achieve full compromise of the environment.

This section **intentionally excludes vulnerabilities not directly required to achieve the
final objective**, as well as exploratory or unsuccessful testing activities. Only findings
that were directly leveraged to advance attacker access or privilege are included.

All other identified issues are reported separately. This isolation of the effective attack
path provides a **high-signal view of critical control failures**, enabling accurate risk
assessment and remediation prioritization.

***
`

// artifactsPreamble opens the artifacts/cleanup section.
const artifactsPreamble = `The following artifacts were created as a direct and intentional result of controlled security testing activities conducted during this engagement.
These artifacts may include, but are not limited to, temporary files, modified configurations, injected payloads, test credentials, web shells, database entries,
or other changes introduced solely to validate the presence and impact of identified security weaknesses.

All artifacts are documented in good faith to assist defenders, system administrators, and security personnel
in accurately identifying, reviewing, and fully removing any residual test-related changes from the environment.
Proper cleanup is a critical final step in restoring affected systems to their intended operational and security baseline.

**Failure to identify and remove testing artifacts may introduce unintended risk.**

Residual artifacts can be abused by malicious actors to regain access, escalate privileges, bypass security controls, or establish persistent footholds long after the conclusion of the assessment.
In some cases, leftover test files or credentials may be indistinguishable from genuine attacker artifacts, complicating incident response, forensic analysis, and future security investigations.

It is therefore **strongly recommended that all listed artifacts be carefully reviewed, validated, and removed where appropriate**,
and that affected systems be revalidated to confirm that no unauthorized access paths or security regressions remain as a result of the testing activities.

***
`

// severityLegendIntro introduces the severity ratings appendix.
const severityLegendIntro = `Each finding has been assigned a severity rating based on the potential business impact
and the likelihood of exploitation. The table below explains each severity level in
non-technical terms.
`

// Evidence fallback sentences, emitted by the typesetter when the referenced
// evidence file does not exist at render time.
const (
	findingEvidenceFallback  = "This finding did not require supporting evidence beyond validation during testing."
	artifactEvidenceFallback = "This artifact did not require supporting evidence beyond validation during testing."
)
