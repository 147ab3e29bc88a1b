package ecs

// Entity is a 32-bit identifier for an object in the registry. Ids are dense
// integers handed out by the entity allocator; a destroyed id is recycled with
// its generation counter bumped, so the same Entity value can name successive
// incarnations of a slot. The component API accepts raw ids without a
// generation check; use Registry.Ref for generation-validated handles.
type Entity uint32

// InvalidEntity is the reserved identifier that never names a live entity.
const InvalidEntity Entity = 0xFFFFFFFF
