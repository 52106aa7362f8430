package catalog

// Block types as reported in the observation block grid.
const (
	BlockAcaciaDoor                 BlockType = "acacia_door"
	BlockAcaciaFence                BlockType = "acacia_fence"
	BlockAcaciaFenceGate            BlockType = "acacia_fence_gate"
	BlockAcaciaStairs               BlockType = "acacia_stairs"
	BlockActivatorRail              BlockType = "activator_rail"
	BlockAir                        BlockType = "air"
	BlockAnvil                      BlockType = "anvil"
	BlockBarrier                    BlockType = "barrier"
	BlockBeacon                     BlockType = "beacon"
	BlockBed                        BlockType = "bed"
	BlockBedrock                    BlockType = "bedrock"
	BlockBeetroots                  BlockType = "beetroots"
	BlockBirchDoor                  BlockType = "birch_door"
	BlockBirchFence                 BlockType = "birch_fence"
	BlockBirchFenceGate             BlockType = "birch_fence_gate"
	BlockBirchStairs                BlockType = "birch_stairs"
	BlockBlackShulkerBox            BlockType = "black_shulker_box"
	BlockBlueShulkerBox             BlockType = "blue_shulker_box"
	BlockBoneBlock                  BlockType = "bone_block"
	BlockBookshelf                  BlockType = "bookshelf"
	BlockBrewingStand               BlockType = "brewing_stand"
	BlockBrickBlock                 BlockType = "brick_block"
	BlockBrickStairs                BlockType = "brick_stairs"
	BlockBrownMushroom              BlockType = "brown_mushroom"
	BlockBrownMushroomBlock         BlockType = "brown_mushroom_block"
	BlockBrownShulkerBox            BlockType = "brown_shulker_box"
	BlockCactus                     BlockType = "cactus"
	BlockCake                       BlockType = "cake"
	BlockCarpet                     BlockType = "carpet"
	BlockCarrots                    BlockType = "carrots"
	BlockCauldron                   BlockType = "cauldron"
	BlockChainCommandBlock          BlockType = "chain_command_block"
	BlockChest                      BlockType = "chest"
	BlockChorusFlower               BlockType = "chorus_flower"
	BlockChorusPlant                BlockType = "chorus_plant"
	BlockClay                       BlockType = "clay"
	BlockCoalBlock                  BlockType = "coal_block"
	BlockCoalOre                    BlockType = "coal_ore"
	BlockCobblestone                BlockType = "cobblestone"
	BlockCobblestoneWall            BlockType = "cobblestone_wall"
	BlockCocoa                      BlockType = "cocoa"
	BlockCommandBlock               BlockType = "command_block"
	BlockCraftingTable              BlockType = "crafting_table"
	BlockCyanShulkerBox             BlockType = "cyan_shulker_box"
	BlockDarkOakDoor                BlockType = "dark_oak_door"
	BlockDarkOakFence               BlockType = "dark_oak_fence"
	BlockDarkOakFenceGate           BlockType = "dark_oak_fence_gate"
	BlockDarkOakStairs              BlockType = "dark_oak_stairs"
	BlockDaylightDetector           BlockType = "daylight_detector"
	BlockDaylightDetectorInverted   BlockType = "daylight_detector_inverted"
	BlockDeadbush                   BlockType = "deadbush"
	BlockDetectorRail               BlockType = "detector_rail"
	BlockDiamondBlock               BlockType = "diamond_block"
	BlockDiamondOre                 BlockType = "diamond_ore"
	BlockDirt                       BlockType = "dirt"
	BlockDispenser                  BlockType = "dispenser"
	BlockDoublePlant                BlockType = "double_plant"
	BlockDoubleStoneSlab            BlockType = "double_stone_slab"
	BlockDoubleStoneSlab2           BlockType = "double_stone_slab2"
	BlockDoubleWoodenSlab           BlockType = "double_wooden_slab"
	BlockDragonEgg                  BlockType = "dragon_egg"
	BlockDropper                    BlockType = "dropper"
	BlockEmeraldBlock               BlockType = "emerald_block"
	BlockEmeraldOre                 BlockType = "emerald_ore"
	BlockEnchantingTable            BlockType = "enchanting_table"
	BlockEndBricks                  BlockType = "end_bricks"
	BlockEndGateway                 BlockType = "end_gateway"
	BlockEndPortal                  BlockType = "end_portal"
	BlockEndPortalFrame             BlockType = "end_portal_frame"
	BlockEndRod                     BlockType = "end_rod"
	BlockEndStone                   BlockType = "end_stone"
	BlockEnderChest                 BlockType = "ender_chest"
	BlockFarmland                   BlockType = "farmland"
	BlockFence                      BlockType = "fence"
	BlockFenceGate                  BlockType = "fence_gate"
	BlockFire                       BlockType = "fire"
	BlockFlowerPot                  BlockType = "flower_pot"
	BlockFlowingLava                BlockType = "flowing_lava"
	BlockFlowingWater               BlockType = "flowing_water"
	BlockFrostedIce                 BlockType = "frosted_ice"
	BlockFurnace                    BlockType = "furnace"
	BlockGlass                      BlockType = "glass"
	BlockGlassPane                  BlockType = "glass_pane"
	BlockGlowstone                  BlockType = "glowstone"
	BlockGoldBlock                  BlockType = "gold_block"
	BlockGoldOre                    BlockType = "gold_ore"
	BlockGoldenRail                 BlockType = "golden_rail"
	BlockGrass                      BlockType = "grass"
	BlockGrassPath                  BlockType = "grass_path"
	BlockGravel                     BlockType = "gravel"
	BlockGrayShulkerBox             BlockType = "gray_shulker_box"
	BlockGreenShulkerBox            BlockType = "green_shulker_box"
	BlockHardenedClay               BlockType = "hardened_clay"
	BlockHayBlock                   BlockType = "hay_block"
	BlockHeavyWeightedPressurePlate BlockType = "heavy_weighted_pressure_plate"
	BlockHopper                     BlockType = "hopper"
	BlockIce                        BlockType = "ice"
	BlockIronBars                   BlockType = "iron_bars"
	BlockIronBlock                  BlockType = "iron_block"
	BlockIronDoor                   BlockType = "iron_door"
	BlockIronOre                    BlockType = "iron_ore"
	BlockIronTrapdoor               BlockType = "iron_trapdoor"
	BlockJukebox                    BlockType = "jukebox"
	BlockJungleDoor                 BlockType = "jungle_door"
	BlockJungleFence                BlockType = "jungle_fence"
	BlockJungleFenceGate            BlockType = "jungle_fence_gate"
	BlockJungleStairs               BlockType = "jungle_stairs"
	BlockLadder                     BlockType = "ladder"
	BlockLapisBlock                 BlockType = "lapis_block"
	BlockLapisOre                   BlockType = "lapis_ore"
	BlockLava                       BlockType = "lava"
	BlockLeaves                     BlockType = "leaves"
	BlockLeaves2                    BlockType = "leaves2"
	BlockLever                      BlockType = "lever"
	BlockLightBlueShulkerBox        BlockType = "light_blue_shulker_box"
	BlockLightWeightedPressurePlate BlockType = "light_weighted_pressure_plate"
	BlockLimeShulkerBox             BlockType = "lime_shulker_box"
	BlockLitFurnace                 BlockType = "lit_furnace"
	BlockLitPumpkin                 BlockType = "lit_pumpkin"
	BlockLitRedstoneLamp            BlockType = "lit_redstone_lamp"
	BlockLitRedstoneOre             BlockType = "lit_redstone_ore"
	BlockLog                        BlockType = "log"
	BlockLog2                       BlockType = "log2"
	BlockMagentaShulkerBox          BlockType = "magenta_shulker_box"
	BlockMagma                      BlockType = "magma"
	BlockMelonBlock                 BlockType = "melon_block"
	BlockMelonStem                  BlockType = "melon_stem"
	BlockMobSpawner                 BlockType = "mob_spawner"
	BlockMonsterEgg                 BlockType = "monster_egg"
	BlockMossyCobblestone           BlockType = "mossy_cobblestone"
	BlockMycelium                   BlockType = "mycelium"
	BlockNetherBrick                BlockType = "nether_brick"
	BlockNetherBrickFence           BlockType = "nether_brick_fence"
	BlockNetherBrickStairs          BlockType = "nether_brick_stairs"
	BlockNetherWart                 BlockType = "nether_wart"
	BlockNetherWartBlock            BlockType = "nether_wart_block"
	BlockNetherrack                 BlockType = "netherrack"
	BlockNoteblock                  BlockType = "noteblock"
	BlockOakStairs                  BlockType = "oak_stairs"
	BlockObserver                   BlockType = "observer"
	BlockObsidian                   BlockType = "obsidian"
	BlockOrangeShulkerBox           BlockType = "orange_shulker_box"
	BlockPackedIce                  BlockType = "packed_ice"
	BlockPinkShulkerBox             BlockType = "pink_shulker_box"
	BlockPiston                     BlockType = "piston"
	BlockPistonExtension            BlockType = "piston_extension"
	BlockPistonHead                 BlockType = "piston_head"
	BlockPlanks                     BlockType = "planks"
	BlockPortal                     BlockType = "portal"
	BlockPotatoes                   BlockType = "potatoes"
	BlockPoweredComparator          BlockType = "powered_comparator"
	BlockPoweredRepeater            BlockType = "powered_repeater"
	BlockPrismarine                 BlockType = "prismarine"
	BlockPumpkin                    BlockType = "pumpkin"
	BlockPumpkinStem                BlockType = "pumpkin_stem"
	BlockPurpleShulkerBox           BlockType = "purple_shulker_box"
	BlockPurpurBlock                BlockType = "purpur_block"
	BlockPurpurDoubleSlab           BlockType = "purpur_double_slab"
	BlockPurpurPillar               BlockType = "purpur_pillar"
	BlockPurpurSlab                 BlockType = "purpur_slab"
	BlockPurpurStairs               BlockType = "purpur_stairs"
	BlockQuartzBlock                BlockType = "quartz_block"
	BlockQuartzOre                  BlockType = "quartz_ore"
	BlockQuartzStairs               BlockType = "quartz_stairs"
	BlockRail                       BlockType = "rail"
	BlockRedFlower                  BlockType = "red_flower"
	BlockRedMushroom                BlockType = "red_mushroom"
	BlockRedMushroomBlock           BlockType = "red_mushroom_block"
	BlockRedNetherBrick             BlockType = "red_nether_brick"
	BlockRedSandstone               BlockType = "red_sandstone"
	BlockRedSandstoneStairs         BlockType = "red_sandstone_stairs"
	BlockRedShulkerBox              BlockType = "red_shulker_box"
	BlockRedstoneBlock              BlockType = "redstone_block"
	BlockRedstoneLamp               BlockType = "redstone_lamp"
	BlockRedstoneOre                BlockType = "redstone_ore"
	BlockRedstoneTorch              BlockType = "redstone_torch"
	BlockRedstoneWire               BlockType = "redstone_wire"
	BlockReeds                      BlockType = "reeds"
	BlockRepeatingCommandBlock      BlockType = "repeating_command_block"
	BlockSand                       BlockType = "sand"
	BlockSandstone                  BlockType = "sandstone"
	BlockSandstoneStairs            BlockType = "sandstone_stairs"
	BlockSapling                    BlockType = "sapling"
	BlockSeaLantern                 BlockType = "sea_lantern"
	BlockSilverShulkerBox           BlockType = "silver_shulker_box"
	BlockSkull                      BlockType = "skull"
	BlockSlime                      BlockType = "slime"
	BlockSnow                       BlockType = "snow"
	BlockSnowLayer                  BlockType = "snow_layer"
	BlockSoulSand                   BlockType = "soul_sand"
	BlockSponge                     BlockType = "sponge"
	BlockSpruceDoor                 BlockType = "spruce_door"
	BlockSpruceFence                BlockType = "spruce_fence"
	BlockSpruceFenceGate            BlockType = "spruce_fence_gate"
	BlockSpruceStairs               BlockType = "spruce_stairs"
	BlockStainedGlass               BlockType = "stained_glass"
	BlockStainedGlassPane           BlockType = "stained_glass_pane"
	BlockStainedHardenedClay        BlockType = "stained_hardened_clay"
	BlockStandingBanner             BlockType = "standing_banner"
	BlockStandingSign               BlockType = "standing_sign"
	BlockStickyPiston               BlockType = "sticky_piston"
	BlockStone                      BlockType = "stone"
	BlockStoneBrickStairs           BlockType = "stone_brick_stairs"
	BlockStoneButton                BlockType = "stone_button"
	BlockStonePressurePlate         BlockType = "stone_pressure_plate"
	BlockStoneSlab                  BlockType = "stone_slab"
	BlockStoneSlab2                 BlockType = "stone_slab2"
	BlockStoneStairs                BlockType = "stone_stairs"
	BlockStonebrick                 BlockType = "stonebrick"
	BlockStructureBlock             BlockType = "structure_block"
	BlockStructureVoid              BlockType = "structure_void"
	BlockTallgrass                  BlockType = "tallgrass"
	BlockTnt                        BlockType = "tnt"
	BlockTorch                      BlockType = "torch"
	BlockTrapdoor                   BlockType = "trapdoor"
	BlockTrappedChest               BlockType = "trapped_chest"
	BlockTripwire                   BlockType = "tripwire"
	BlockTripwireHook               BlockType = "tripwire_hook"
	BlockUnlitRedstoneTorch         BlockType = "unlit_redstone_torch"
	BlockUnpoweredComparator        BlockType = "unpowered_comparator"
	BlockUnpoweredRepeater          BlockType = "unpowered_repeater"
	BlockVine                       BlockType = "vine"
	BlockWallBanner                 BlockType = "wall_banner"
	BlockWallSign                   BlockType = "wall_sign"
	BlockWater                      BlockType = "water"
	BlockWaterlily                  BlockType = "waterlily"
	BlockWeb                        BlockType = "web"
	BlockWheat                      BlockType = "wheat"
	BlockWhiteShulkerBox            BlockType = "white_shulker_box"
	BlockWoodenButton               BlockType = "wooden_button"
	BlockWoodenDoor                 BlockType = "wooden_door"
	BlockWoodenPressurePlate        BlockType = "wooden_pressure_plate"
	BlockWoodenSlab                 BlockType = "wooden_slab"
	BlockWool                       BlockType = "wool"
	BlockYellowFlower               BlockType = "yellow_flower"
	BlockYellowShulkerBox           BlockType = "yellow_shulker_box"
)

var blockTypes = []BlockType{
	BlockAcaciaDoor,
	BlockAcaciaFence,
	BlockAcaciaFenceGate,
	BlockAcaciaStairs,
	BlockActivatorRail,
	BlockAir,
	BlockAnvil,
	BlockBarrier,
	BlockBeacon,
	BlockBed,
	BlockBedrock,
	BlockBeetroots,
	BlockBirchDoor,
	BlockBirchFence,
	BlockBirchFenceGate,
	BlockBirchStairs,
	BlockBlackShulkerBox,
	BlockBlueShulkerBox,
	BlockBoneBlock,
	BlockBookshelf,
	BlockBrewingStand,
	BlockBrickBlock,
	BlockBrickStairs,
	BlockBrownMushroom,
	BlockBrownMushroomBlock,
	BlockBrownShulkerBox,
	BlockCactus,
	BlockCake,
	BlockCarpet,
	BlockCarrots,
	BlockCauldron,
	BlockChainCommandBlock,
	BlockChest,
	BlockChorusFlower,
	BlockChorusPlant,
	BlockClay,
	BlockCoalBlock,
	BlockCoalOre,
	BlockCobblestone,
	BlockCobblestoneWall,
	BlockCocoa,
	BlockCommandBlock,
	BlockCraftingTable,
	BlockCyanShulkerBox,
	BlockDarkOakDoor,
	BlockDarkOakFence,
	BlockDarkOakFenceGate,
	BlockDarkOakStairs,
	BlockDaylightDetector,
	BlockDaylightDetectorInverted,
	BlockDeadbush,
	BlockDetectorRail,
	BlockDiamondBlock,
	BlockDiamondOre,
	BlockDirt,
	BlockDispenser,
	BlockDoublePlant,
	BlockDoubleStoneSlab,
	BlockDoubleStoneSlab2,
	BlockDoubleWoodenSlab,
	BlockDragonEgg,
	BlockDropper,
	BlockEmeraldBlock,
	BlockEmeraldOre,
	BlockEnchantingTable,
	BlockEndBricks,
	BlockEndGateway,
	BlockEndPortal,
	BlockEndPortalFrame,
	BlockEndRod,
	BlockEndStone,
	BlockEnderChest,
	BlockFarmland,
	BlockFence,
	BlockFenceGate,
	BlockFire,
	BlockFlowerPot,
	BlockFlowingLava,
	BlockFlowingWater,
	BlockFrostedIce,
	BlockFurnace,
	BlockGlass,
	BlockGlassPane,
	BlockGlowstone,
	BlockGoldBlock,
	BlockGoldOre,
	BlockGoldenRail,
	BlockGrass,
	BlockGrassPath,
	BlockGravel,
	BlockGrayShulkerBox,
	BlockGreenShulkerBox,
	BlockHardenedClay,
	BlockHayBlock,
	BlockHeavyWeightedPressurePlate,
	BlockHopper,
	BlockIce,
	BlockIronBars,
	BlockIronBlock,
	BlockIronDoor,
	BlockIronOre,
	BlockIronTrapdoor,
	BlockJukebox,
	BlockJungleDoor,
	BlockJungleFence,
	BlockJungleFenceGate,
	BlockJungleStairs,
	BlockLadder,
	BlockLapisBlock,
	BlockLapisOre,
	BlockLava,
	BlockLeaves,
	BlockLeaves2,
	BlockLever,
	BlockLightBlueShulkerBox,
	BlockLightWeightedPressurePlate,
	BlockLimeShulkerBox,
	BlockLitFurnace,
	BlockLitPumpkin,
	BlockLitRedstoneLamp,
	BlockLitRedstoneOre,
	BlockLog,
	BlockLog2,
	BlockMagentaShulkerBox,
	BlockMagma,
	BlockMelonBlock,
	BlockMelonStem,
	BlockMobSpawner,
	BlockMonsterEgg,
	BlockMossyCobblestone,
	BlockMycelium,
	BlockNetherBrick,
	BlockNetherBrickFence,
	BlockNetherBrickStairs,
	BlockNetherWart,
	BlockNetherWartBlock,
	BlockNetherrack,
	BlockNoteblock,
	BlockOakStairs,
	BlockObserver,
	BlockObsidian,
	BlockOrangeShulkerBox,
	BlockPackedIce,
	BlockPinkShulkerBox,
	BlockPiston,
	BlockPistonExtension,
	BlockPistonHead,
	BlockPlanks,
	BlockPortal,
	BlockPotatoes,
	BlockPoweredComparator,
	BlockPoweredRepeater,
	BlockPrismarine,
	BlockPumpkin,
	BlockPumpkinStem,
	BlockPurpleShulkerBox,
	BlockPurpurBlock,
	BlockPurpurDoubleSlab,
	BlockPurpurPillar,
	BlockPurpurSlab,
	BlockPurpurStairs,
	BlockQuartzBlock,
	BlockQuartzOre,
	BlockQuartzStairs,
	BlockRail,
	BlockRedFlower,
	BlockRedMushroom,
	BlockRedMushroomBlock,
	BlockRedNetherBrick,
	BlockRedSandstone,
	BlockRedSandstoneStairs,
	BlockRedShulkerBox,
	BlockRedstoneBlock,
	BlockRedstoneLamp,
	BlockRedstoneOre,
	BlockRedstoneTorch,
	BlockRedstoneWire,
	BlockReeds,
	BlockRepeatingCommandBlock,
	BlockSand,
	BlockSandstone,
	BlockSandstoneStairs,
	BlockSapling,
	BlockSeaLantern,
	BlockSilverShulkerBox,
	BlockSkull,
	BlockSlime,
	BlockSnow,
	BlockSnowLayer,
	BlockSoulSand,
	BlockSponge,
	BlockSpruceDoor,
	BlockSpruceFence,
	BlockSpruceFenceGate,
	BlockSpruceStairs,
	BlockStainedGlass,
	BlockStainedGlassPane,
	BlockStainedHardenedClay,
	BlockStandingBanner,
	BlockStandingSign,
	BlockStickyPiston,
	BlockStone,
	BlockStoneBrickStairs,
	BlockStoneButton,
	BlockStonePressurePlate,
	BlockStoneSlab,
	BlockStoneSlab2,
	BlockStoneStairs,
	BlockStonebrick,
	BlockStructureBlock,
	BlockStructureVoid,
	BlockTallgrass,
	BlockTnt,
	BlockTorch,
	BlockTrapdoor,
	BlockTrappedChest,
	BlockTripwire,
	BlockTripwireHook,
	BlockUnlitRedstoneTorch,
	BlockUnpoweredComparator,
	BlockUnpoweredRepeater,
	BlockVine,
	BlockWallBanner,
	BlockWallSign,
	BlockWater,
	BlockWaterlily,
	BlockWeb,
	BlockWheat,
	BlockWhiteShulkerBox,
	BlockWoodenButton,
	BlockWoodenDoor,
	BlockWoodenPressurePlate,
	BlockWoodenSlab,
	BlockWool,
	BlockYellowFlower,
	BlockYellowShulkerBox,
}
