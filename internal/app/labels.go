package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	procctlv1 "procctl/api/proto/procctl/v1"
)

// LabelKind is one of the two label namespaces of the registry.
type LabelKind string

const (
	KindTag   LabelKind = "tag"
	KindGroup LabelKind = "group"
)

// LabelParams adds and removes labels on the selected entries.
type LabelParams struct {
	Filters      ListFilters
	AllowAll     bool
	AddTags      []string
	RemoveTags   []string
	AddGroups    []string
	RemoveGroups []string
	Timeout      time.Duration
}

func (p LabelParams) noChange() bool {
	return len(p.AddTags) == 0 && len(p.RemoveTags) == 0 && len(p.AddGroups) == 0 && len(p.RemoveGroups) == 0
}

// LabelResult holds the entries as they look after relabeling.
type LabelResult struct {
	Updated []Process
	Message string
}

// Label changes the tags and groups of the matching entries. More than one
// match needs AllowAll.
func (a *App) Label(ctx context.Context, params LabelParams) (LabelResult, error) {
	var result LabelResult
	if params.noChange() {
		return result, errors.New("nothing to change: name tags or groups to add or remove")
	}
	if !params.AllowAll && params.Filters.empty() {
		return result, errors.New("provide at least one selector (--id/--identity/--pid/--tag/--group/--name/--search) or pass --all")
	}
	req, err := params.Filters.buildRequest()
	if err != nil {
		return result, err
	}

	err = a.withDaemon(ctx, params.Timeout, func(ctx context.Context, client procctlv1.ProcCtlClient) error {
		procs, err := listMatching(ctx, client, req, params.Filters)
		if err != nil {
			return err
		}
		if len(procs) == 0 {
			result.Message = "No matching processes registered"
			return nil
		}
		if len(procs) > 1 && !params.AllowAll {
			return fmt.Errorf("%d processes match (%s). Use --all to relabel them all or narrow the selection", len(procs), sampleIdentities(procs))
		}
		for _, p := range procs {
			resp, err := client.SetLabels(ctx, &procctlv1.SetLabelsRequest{
				Id:           p.ID,
				AddTags:      params.AddTags,
				RemoveTags:   params.RemoveTags,
				AddGroups:    params.AddGroups,
				RemoveGroups: params.RemoveGroups,
			})
			if err != nil {
				return fmt.Errorf("relabel %s failed: %w", p.Identity, err)
			}
			result.Updated = append(result.Updated, procFromProto(resp.GetProc()))
		}
		return nil
	})
	return result, err
}

// RenameParams renames a tag or group on every entry carrying it.
type RenameParams struct {
	Kind    LabelKind
	From    string
	To      string
	Timeout time.Duration
}

// RenameResult reports the rename and the entries now carrying the label.
type RenameResult struct {
	Updated   int
	Processes []Process
}

// RenameLabel renames a label registry-wide.
func (a *App) RenameLabel(ctx context.Context, params RenameParams) (RenameResult, error) {
	var result RenameResult
	if params.Kind != KindTag && params.Kind != KindGroup {
		return result, fmt.Errorf("unknown label kind %q", params.Kind)
	}
	from, to := strings.TrimSpace(params.From), strings.TrimSpace(params.To)
	if from == "" || to == "" {
		return result, fmt.Errorf("%s names must not be empty", params.Kind)
	}
	if from == to {
		return result, fmt.Errorf("%s %q would be renamed to itself", params.Kind, from)
	}

	err := a.withDaemon(ctx, params.Timeout, func(ctx context.Context, client procctlv1.ProcCtlClient) error {
		req := &procctlv1.ListRequest{}
		if params.Kind == KindTag {
			resp, err := client.RenameTag(ctx, &procctlv1.RenameTagRequest{From: from, To: to})
			if err != nil {
				return fmt.Errorf("daemon rename tag RPC failed: %w", err)
			}
			result.Updated = int(resp.GetUpdated())
			req.TagsAll = []string{to}
		} else {
			resp, err := client.RenameGroup(ctx, &procctlv1.RenameGroupRequest{From: from, To: to})
			if err != nil {
				return fmt.Errorf("daemon rename group RPC failed: %w", err)
			}
			result.Updated = int(resp.GetUpdated())
			req.GroupsAll = []string{to}
		}
		procs, err := listMatching(ctx, client, req, ListFilters{})
		result.Processes = procs
		return err
	})
	return result, err
}
