package systems

import (
	"github.com/automoto/groundwork/components"
	"github.com/automoto/groundwork/tags"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Destroy removes the entity from the world and its footprint from the
// collision space.
func Destroy(e *ecs.ECS, entry *donburi.Entry) {
	if !entry.Valid() {
		return
	}
	log.Debug().Str("entity", EntityName(entry)).Msg("destroyed")
	if !entry.HasComponent(tags.Disabled) {
		removeFootprint(e, entry)
	}
	e.World.Remove(entry.Entity())
}

// Disable takes the entity out of play: systems skip it and raycasts no
// longer see it.
func Disable(e *ecs.ECS, entry *donburi.Entry) {
	if !entry.Valid() || entry.HasComponent(tags.Disabled) {
		return
	}
	log.Debug().Str("entity", EntityName(entry)).Msg("disabled")
	entry.AddComponent(tags.Disabled)
	removeFootprint(e, entry)
}

// ScheduleDestroy destroys the entity once the clock reaches at. An earlier
// schedule is kept.
func ScheduleDestroy(e *ecs.ECS, entry *donburi.Entry, at float64) {
	if entry.HasComponent(components.DestroyAt) {
		if d := components.DestroyAt.Get(entry); at < d.Time {
			d.Time = at
		}
		return
	}
	entry.AddComponent(components.DestroyAt)
	components.DestroyAt.SetValue(entry, components.DestroyAtData{Time: at})
	log.Debug().Str("entity", EntityName(entry)).Float64("at", at).Msg("destroy scheduled")
}

// UpdateScheduledDestroys destroys entities whose DestroyAt time has come.
func UpdateScheduledDestroys(e *ecs.ECS) {
	now := Now(e)
	var due []*donburi.Entry
	components.DestroyAt.Each(e.World, func(entry *donburi.Entry) {
		if components.DestroyAt.Get(entry).Time <= now {
			due = append(due, entry)
		}
	})
	for _, entry := range due {
		Destroy(e, entry)
	}
}

func removeFootprint(e *ecs.ECS, entry *donburi.Entry) {
	if !entry.HasComponent(components.Object) {
		return
	}
	space, ok := GetSpace(e)
	if !ok {
		return
	}
	if obj := components.Object.Get(entry); obj.Object != nil {
		space.Remove(obj.Object)
	}
}
