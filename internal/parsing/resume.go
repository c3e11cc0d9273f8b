package parsing

import (
	"strings"

	"github.com/jonathan/mockmate/internal/skills"
	"github.com/jonathan/mockmate/internal/types"
)

const mailtoPrefix = "mailto:"

// ParseResume composes every extractor over one résumé text. Links are the
// hyperlinks found in the source document; they supply a fallback email
// (mailto:) and the LinkedIn and GitHub profile URLs. The result shares no
// state with other calls.
func ParseResume(text string, links []string) *types.ResumeProfile {
	profile := &types.ResumeProfile{
		Readable: !types.IsUnreadable(text),
		Name:     ExtractName(text),
		Contact: types.ContactFields{
			Email: ExtractEmail(text),
			Phone: ExtractPhone(text),
		},
		Skills:   skills.ExtractSkills(text),
		Sections: ExtractSections(text),
		Projects: ExtractProjects(text),
	}

	if profile.Contact.Email == nil {
		profile.Contact.Email = mailtoAddress(links)
	}
	profile.Links.LinkedIn = firstLinkContaining(links, "linkedin.com")
	profile.Links.GitHub = firstLinkContaining(links, "github.com")

	return profile
}

func mailtoAddress(links []string) *string {
	for _, link := range links {
		if strings.HasPrefix(strings.ToLower(link), mailtoPrefix) {
			target, _, _ := strings.Cut(link[len(mailtoPrefix):], "?")
			if address := emailPattern.FindString(target); address != "" {
				return &address
			}
		}
	}
	return nil
}

func firstLinkContaining(links []string, host string) *string {
	for _, link := range links {
		if strings.Contains(strings.ToLower(link), host) {
			found := link
			return &found
		}
	}
	return nil
}
